package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/config"
	"github.com/quillhq/quill-be/model"
)

const (
	USER_KEY = "user"
	// SessionCookieName is the cookie carrying the auth provider's session.
	SessionCookieName = "session"
)

// Sessions resolves a session cookie to the local user. (nil, nil) means
// unauthenticated.
type Sessions interface {
	CurrentUser(ctx context.Context, sessionCookie string) (*model.User, error)
}

// Auth resolves the current user from the session cookie and stores it in
// the request context. It never aborts; pair it with RequireLogin on guarded
// routes.
func Auth(sessions Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			return
		}
		user, err := sessions.CurrentUser(c, cookie)
		if err != nil || user == nil {
			return
		}
		c.Set(USER_KEY, user)
	}
}

// RequireLogin redirects unauthenticated requests to the login URL, carrying
// the originally requested path so the user lands back where they started.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserMaybe(c) == nil {
			c.Redirect(http.StatusFound, config.LoginURL+"?next="+c.Request.URL.Path)
			c.Abort()
		}
	}
}

// GetUserMaybe returns the authenticated user or nil.
func GetUserMaybe(c *gin.Context) *model.User {
	user, ok := c.Get(USER_KEY)
	if !ok {
		return nil
	}
	return user.(*model.User)
}

// MustGetUser returns the authenticated user. Only call it behind
// RequireLogin.
func MustGetUser(c *gin.Context) *model.User {
	return GetUserMaybe(c)
}
