package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/cache"
	"github.com/quillhq/quill-be/config"
	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/feed"
	"github.com/quillhq/quill-be/middleware"
	"github.com/quillhq/quill-be/model"
	"github.com/quillhq/quill-be/util"
)

type feedRoutes struct {
	db db.Database
}

func AddFeedRoutes(group *gin.RouterGroup, database db.Database, pageCache cache.Cache) {
	routes := feedRoutes{db: database}
	group.GET("/",
		middleware.CachePage(pageCache, cache.HomeFeedKey, config.HomeFeedTTL),
		util.HandlerWrapper(routes.index, &util.HandlerOpts{}))
	group.GET("/group/:slug/", util.HandlerWrapper(routes.groupFeed, &util.HandlerOpts{}))
	group.GET("/profile/:username/", util.HandlerWrapper(routes.profile, &util.HandlerOpts{}))
	group.GET("/follow/",
		middleware.RequireLogin(),
		util.HandlerWrapper(routes.followFeed, &util.HandlerOpts{}))
}

func (fr *feedRoutes) index(c *gin.Context) *util.HTTPError {
	page, err := feed.Paginate(c, fr.db, nil, c.Query("page"), config.PostsPerPage)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Latest updates",
		"page":  page,
		"user":  middleware.GetUserMaybe(c),
	})
	return nil
}

func (fr *feedRoutes) groupFeed(c *gin.Context) *util.HTTPError {
	slug := c.Param("slug")
	blogGroup, err := fr.db.GroupBySlug(c, slug)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if blogGroup == nil {
		return util.NotFoundErr("group not found")
	}
	page, err := feed.Paginate(c, fr.db, &db.PostsFilter{GroupId: &blogGroup.Id},
		c.Query("page"), config.PostsPerPage)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.HTML(http.StatusOK, "group_list.html", gin.H{
		"title": "Group " + blogGroup.Title,
		"group": blogGroup,
		"page":  page,
		"user":  middleware.GetUserMaybe(c),
	})
	return nil
}

func (fr *feedRoutes) profile(c *gin.Context) *util.HTTPError {
	author, err := fr.db.UserByUsername(c, c.Param("username"))
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if author == nil {
		return util.NotFoundErr("user not found")
	}
	filter := &db.PostsFilter{AuthorId: &author.Id}
	postCount, err := fr.db.CountPosts(c, filter)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	page, err := feed.Paginate(c, fr.db, filter, c.Query("page"), config.PostsPerPage)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}

	following := false
	if user := middleware.GetUserMaybe(c); user != nil && user.Id != author.Id {
		following, err = fr.db.FollowExists(c, &model.Follow{UserId: user.Id, AuthorId: author.Id})
		if err != nil {
			return util.BuildDbHTTPErr(err)
		}
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"title":     "Profile of " + author.Username,
		"author":    author,
		"avatar":    util.Avatar(author.Username),
		"postCount": postCount,
		"following": following,
		"page":      page,
		"user":      middleware.GetUserMaybe(c),
	})
	return nil
}

func (fr *feedRoutes) followFeed(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	page, err := feed.Paginate(c, fr.db, &db.PostsFilter{FollowedBy: &user.Id},
		c.Query("page"), config.PostsPerPage)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.HTML(http.StatusOK, "follow.html", gin.H{
		"title": "Posts from followed authors",
		"page":  page,
		"user":  user,
	})
	return nil
}
