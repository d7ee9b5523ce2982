package routes

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/cache"
	"github.com/quillhq/quill-be/controllers"
	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/db/memdb"
	"github.com/quillhq/quill-be/model"
	"github.com/quillhq/quill-be/services"
	"github.com/stretchr/testify/require"
)

// smallGif is a minimal valid GIF payload.
var smallGif = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x0C,
	0x0A, 0x00, 0x3B,
}

type fakeSessions struct {
	users map[string]*model.User
}

func (fs *fakeSessions) CurrentUser(ctx context.Context, sessionCookie string) (*model.User, error) {
	return fs.users[sessionCookie], nil
}

type testApp struct {
	engine   *gin.Engine
	db       *memdb.MemDB
	cache    *cache.MemoryCache
	images   *services.MemoryImageStore
	sessions *fakeSessions
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := memdb.GetDatabase()
	groupController, err := controllers.NewGroupController(context.Background(), database)
	require.NoError(t, err)

	app := &testApp{
		db:       database,
		cache:    cache.NewMemoryCache(),
		images:   services.NewMemoryImageStore(),
		sessions: &fakeSessions{users: make(map[string]*model.User)},
	}
	app.engine = NewRouter(&RouterDeps{
		DB:            database,
		Sessions:      app.sessions,
		PageCache:     app.cache,
		Images:        app.images,
		Groups:        groupController,
		TemplatesGlob: "../templates/*.html",
	})
	return app
}

func (app *testApp) seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com"}
	id, err := app.db.CreateUser(context.Background(), user)
	require.NoError(t, err)
	user.Id = id
	return user
}

func (app *testApp) seedGroup(t *testing.T, title, slug string) *model.Group {
	t.Helper()
	id, err := app.db.CreateGroup(context.Background(), &db.CreateGroup{
		Title: title,
		Slug:  slug,
	})
	require.NoError(t, err)
	return &model.Group{Id: id, Title: title, Slug: slug}
}

func (app *testApp) seedPost(t *testing.T, author *model.User, group *model.Group, text string) int64 {
	t.Helper()
	req := &db.CreatePost{Text: text, AuthorId: author.Id}
	if group != nil {
		req.GroupId = &group.Id
	}
	id, err := app.db.CreatePost(context.Background(), req)
	require.NoError(t, err)
	return id
}

// loginAs registers a session token for the user and returns it.
func (app *testApp) loginAs(user *model.User) string {
	token := fmt.Sprintf("session-%d", user.Id)
	app.sessions.users[token] = user
	return token
}

func (app *testApp) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	attachSession(req, token)
	recorder := httptest.NewRecorder()
	app.engine.ServeHTTP(recorder, req)
	return recorder
}

func (app *testApp) postForm(path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	attachSession(req, token)
	recorder := httptest.NewRecorder()
	app.engine.ServeHTTP(recorder, req)
	return recorder
}

func (app *testApp) postMultipart(t *testing.T, path, token string, fields map[string]string, filename string, fileData []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	attachSession(req, token)
	recorder := httptest.NewRecorder()
	app.engine.ServeHTTP(recorder, req)
	return recorder
}

func attachSession(req *http.Request, token string) {
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
}
