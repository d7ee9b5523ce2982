package routes

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/cache"
	"github.com/quillhq/quill-be/controllers"
	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/middleware"
	"github.com/quillhq/quill-be/services"
)

// RouterDeps are the collaborators a fully wired engine needs. Tests inject
// the in-memory implementations.
type RouterDeps struct {
	DB            db.Database
	Sessions      middleware.Sessions
	PageCache     cache.Cache
	Images        services.ImageStore
	Groups        *controllers.GroupController
	TemplatesGlob string
	// Middleware is process-level middleware (logging, recovery, CORS)
	// installed ahead of session resolution.
	Middleware []gin.HandlerFunc
}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("02 Jan 2006, 15:04")
	},
}

// NewRouter builds the engine: templates, session resolution, and every
// route group. main adds its own process-level middleware on top.
func NewRouter(deps *RouterDeps) *gin.Engine {
	engine := gin.New()
	engine.SetFuncMap(templateFuncs)
	engine.LoadHTMLGlob(deps.TemplatesGlob)
	engine.Use(deps.Middleware...)
	engine.Use(middleware.Auth(deps.Sessions))

	AddFeedRoutes(&engine.RouterGroup, deps.DB, deps.PageCache)
	AddPostRoutes(&engine.RouterGroup, deps.DB, deps.Images, deps.Groups)
	AddFollowRoutes(&engine.RouterGroup, deps.DB)
	AddHealthCheckRoutes(&engine.RouterGroup)

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"path": c.Request.URL.Path,
		})
	})
	return engine
}
