package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/cache"
	"github.com/quillhq/quill-be/config"
	"github.com/quillhq/quill-be/controllers"
	"github.com/quillhq/quill-be/db/cloudsql"
	"github.com/quillhq/quill-be/routes"
	"github.com/quillhq/quill-be/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	database, err := cloudsql.GetDatabase(&cloudsql.Config{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Name: cfg.DBName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("received err when attempting to connect to DB")
	}
	defer database.Close()

	if err := configureFirebaseCredentials(); err != nil {
		log.Fatal().Err(err).Msg("an error occurred while configuring firebase credentials")
	}
	app, err := firebase.NewApp(context.Background(), nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing firebase")
	}
	authClient, err := app.Auth(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing auth client")
	}

	uploadsBucket, err := services.NewStorageBucket(context.Background(), app, cfg.Bucket)
	if err != nil {
		log.Fatal().Err(err).Msg("an error occurred while connecting to the uploads bucket")
	}

	groupController, err := controllers.NewGroupController(context.Background(), database)
	if err != nil {
		log.Fatal().Err(err).Msg("an error occurred while initializing the group controller")
	}

	gin.SetMode(cfg.GinMode)
	engine := routes.NewRouter(&routes.RouterDeps{
		DB:            database,
		Sessions:      services.NewFirebaseSessions(authClient, database),
		PageCache:     cache.NewRedisCache(cfg.RedisAddr),
		Images:        uploadsBucket,
		Groups:        groupController,
		TemplatesGlob: "templates/*.html",
		Middleware: []gin.HandlerFunc{
			gin.Logger(),
			gin.Recovery(),
			cors.New(cors.Config{
				AllowOrigins:  strings.Split(cfg.FEOrigins, ";"),
				AllowMethods:  []string{"GET", "POST"},
				AllowHeaders:  []string{"Origin", "Authorization"},
				ExposeHeaders: []string{"Content-Length"},
				MaxAge:        12 * time.Hour,
			}),
		},
	})

	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("error when attempting to run web server")
	}
}

const (
	CredentialsPathEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	CredentialsJsonEnvVar = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	TargetCredentialsFile = "./google-application-credentials.json"
)

func configureFirebaseCredentials() error {
	credentialsPath, hasCredentialsPath := os.LookupEnv(CredentialsPathEnvVar)
	if hasCredentialsPath {
		log.Info().Str("path", credentialsPath).Msg("credentials path detected in env")
		return nil
	}
	credentialsJson, hasCredentialsJson := os.LookupEnv(CredentialsJsonEnvVar)
	if hasCredentialsJson {
		log.Info().Msg("credentials JSON string detected in env")
		if err := os.WriteFile(TargetCredentialsFile, []byte(credentialsJson), 0400); err != nil {
			return fmt.Errorf("error writing credentials to temp file, %w", err)
		}
		if err := os.Setenv(CredentialsPathEnvVar, TargetCredentialsFile); err != nil {
			return fmt.Errorf("error setting %v env var %w", CredentialsPathEnvVar, err)
		}
		return nil
	}
	return fmt.Errorf("must specify either %v (a path)"+
		" or %v (credentials as JSON string)", CredentialsPathEnvVar, CredentialsJsonEnvVar)
}
