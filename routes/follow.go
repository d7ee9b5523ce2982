package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/middleware"
	"github.com/quillhq/quill-be/model"
	"github.com/quillhq/quill-be/util"
)

type followRoutes struct {
	db db.Database
}

func AddFollowRoutes(group *gin.RouterGroup, database db.Database) {
	routes := followRoutes{db: database}
	guarded := group.Group("", middleware.RequireLogin())
	guarded.GET("/profile/:username/follow/", util.HandlerWrapper(routes.follow, &util.HandlerOpts{}))
	guarded.GET("/profile/:username/unfollow/", util.HandlerWrapper(routes.unfollow, &util.HandlerOpts{}))
}

// follow subscribes the current user to the author. Self-follow is silently
// refused and duplicate follows are no-ops.
func (fr *followRoutes) follow(c *gin.Context) *util.HTTPError {
	author, httpErr := fr.resolveAuthor(c)
	if httpErr != nil {
		return httpErr
	}
	user := middleware.MustGetUser(c)
	if user.Id != author.Id {
		if err := fr.db.CreateFollow(c, &model.Follow{UserId: user.Id, AuthorId: author.Id}); err != nil {
			return util.BuildDbHTTPErr(err)
		}
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", author.Username))
	return nil
}

func (fr *followRoutes) unfollow(c *gin.Context) *util.HTTPError {
	author, httpErr := fr.resolveAuthor(c)
	if httpErr != nil {
		return httpErr
	}
	user := middleware.MustGetUser(c)
	if err := fr.db.DeleteFollow(c, &model.Follow{UserId: user.Id, AuthorId: author.Id}); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", author.Username))
	return nil
}

func (fr *followRoutes) resolveAuthor(c *gin.Context) (*model.User, *util.HTTPError) {
	author, err := fr.db.UserByUsername(c, c.Param("username"))
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if author == nil {
		return nil, util.NotFoundErr("user not found")
	}
	return author, nil
}
