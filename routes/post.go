package routes

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/controllers"
	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/forms"
	"github.com/quillhq/quill-be/middleware"
	"github.com/quillhq/quill-be/model"
	"github.com/quillhq/quill-be/services"
	"github.com/quillhq/quill-be/util"
)

type postRoutes struct {
	db     db.Database
	images services.ImageStore
	groups *controllers.GroupController
}

func AddPostRoutes(group *gin.RouterGroup, database db.Database, images services.ImageStore, groupController *controllers.GroupController) {
	routes := postRoutes{db: database, images: images, groups: groupController}
	group.GET("/posts/:id/", util.HandlerWrapper(routes.postDetail, &util.HandlerOpts{}))
	group.GET("/media/:blob", util.HandlerWrapper(routes.media, &util.HandlerOpts{}))

	guarded := group.Group("", middleware.RequireLogin())
	guarded.GET("/create/", util.HandlerWrapper(routes.createForm, &util.HandlerOpts{}))
	guarded.POST("/create/", util.HandlerWrapper(routes.create, &util.HandlerOpts{}))
	guarded.GET("/posts/:id/edit/", util.HandlerWrapper(routes.editForm, &util.HandlerOpts{}))
	guarded.POST("/posts/:id/edit/", util.HandlerWrapper(routes.edit, &util.HandlerOpts{}))
	guarded.POST("/posts/:id/comment/", util.HandlerWrapper(routes.addComment, &util.HandlerOpts{}))
}

func (pr *postRoutes) postDetail(c *gin.Context) *util.HTTPError {
	post, httpErr := pr.resolvePost(c)
	if httpErr != nil {
		return httpErr
	}
	postCount, err := pr.db.CountPosts(c, &db.PostsFilter{AuthorId: &post.Author.Id})
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	comments, err := pr.db.CommentsByPost(c, post.Id)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"title":     "Post " + post.Label(),
		"post":      post,
		"postCount": postCount,
		"comments":  comments,
		"form":      &forms.CommentForm{},
		"user":      middleware.GetUserMaybe(c),
	})
	return nil
}

func (pr *postRoutes) createForm(c *gin.Context) *util.HTTPError {
	pr.renderPostForm(c, &forms.PostForm{}, nil, 0)
	return nil
}

func (pr *postRoutes) create(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	form := parsePostForm(c)
	data, fieldErrs, err := form.Validate(c, pr.db)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if fieldErrs != nil {
		pr.renderPostForm(c, form, fieldErrs, 0)
		return nil
	}

	req := &db.CreatePost{
		Text:     util.XSSSanitize(data.Text),
		AuthorId: user.Id,
	}
	if data.Group != nil {
		req.GroupId = &data.Group.Id
	}
	if data.Image != nil {
		blobName, err := pr.images.Save(c, data.Image.Filename, data.Image.Data)
		if err != nil {
			return &util.HTTPError{Status: http.StatusInternalServerError, Message: "image upload failed"}
		}
		req.ImageBlob = blobName
	}
	if _, err := pr.db.CreatePost(c, req); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", user.Username))
	return nil
}

func (pr *postRoutes) editForm(c *gin.Context) *util.HTTPError {
	post, httpErr := pr.resolveOwnPost(c)
	if httpErr != nil || post == nil {
		return httpErr
	}
	form := &forms.PostForm{Text: post.Text}
	if post.Group != nil {
		form.GroupId = strconv.FormatInt(post.Group.Id, 10)
	}
	pr.renderPostForm(c, form, nil, post.Id)
	return nil
}

func (pr *postRoutes) edit(c *gin.Context) *util.HTTPError {
	post, httpErr := pr.resolveOwnPost(c)
	if httpErr != nil || post == nil {
		return httpErr
	}
	form := parsePostForm(c)
	data, fieldErrs, err := form.Validate(c, pr.db)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if fieldErrs != nil {
		pr.renderPostForm(c, form, fieldErrs, post.Id)
		return nil
	}

	req := &db.UpdatePost{Text: util.XSSSanitize(data.Text)}
	if data.Group != nil {
		req.GroupId = &data.Group.Id
	}
	if data.Image != nil {
		blobName, err := pr.images.Save(c, data.Image.Filename, data.Image.Data)
		if err != nil {
			return &util.HTTPError{Status: http.StatusInternalServerError, Message: "image upload failed"}
		}
		req.ImageBlob = blobName
	}
	if err := pr.db.UpdatePost(c, post.Id, req); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.Id))
	return nil
}

// addComment persists a valid comment; an invalid one is silently dropped.
// Either way the user lands back on the post detail page.
func (pr *postRoutes) addComment(c *gin.Context) *util.HTTPError {
	post, httpErr := pr.resolvePost(c)
	if httpErr != nil {
		return httpErr
	}
	form := &forms.CommentForm{Text: c.PostForm("text")}
	if text, fieldErrs := form.Validate(); fieldErrs == nil {
		if _, err := pr.db.CreateComment(c, &db.CreateComment{
			PostId:   post.Id,
			AuthorId: middleware.MustGetUser(c).Id,
			Text:     util.XSSSanitize(text),
		}); err != nil {
			return util.BuildDbHTTPErr(err)
		}
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.Id))
	return nil
}

func (pr *postRoutes) media(c *gin.Context) *util.HTTPError {
	body, contentType, err := pr.images.Open(c, c.Param("blob"))
	if err != nil {
		return util.NotFoundErr("image not found")
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: "image read failed"}
	}
	c.Data(http.StatusOK, contentType, data)
	return nil
}

func (pr *postRoutes) resolvePost(c *gin.Context) (*model.Post, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	post, err := pr.db.PostById(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, util.NotFoundErr("post not found")
	}
	return post, nil
}

// resolveOwnPost resolves the post and refuses edits by anyone but the
// author: a non-author is silently redirected to the detail page. A (nil,
// nil) return means the redirect was already written.
func (pr *postRoutes) resolveOwnPost(c *gin.Context) (*model.Post, *util.HTTPError) {
	post, httpErr := pr.resolvePost(c)
	if httpErr != nil {
		return nil, httpErr
	}
	if middleware.MustGetUser(c).Id != post.Author.Id {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.Id))
		return nil, nil
	}
	return post, nil
}

func (pr *postRoutes) renderPostForm(c *gin.Context, form *forms.PostForm, fieldErrs forms.FieldErrors, postId int64) {
	title := "New post"
	if postId != 0 {
		title = "Edit post"
	}
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"title":  title,
		"form":   form,
		"errors": fieldErrs,
		"isEdit": postId != 0,
		"postId": postId,
		"groups": pr.groups.Groups(),
		"user":   middleware.GetUserMaybe(c),
	})
}

// parsePostForm pulls the raw field values off the request. A missing or
// non-multipart image part just means no image was attached.
func parsePostForm(c *gin.Context) *forms.PostForm {
	form := &forms.PostForm{
		Text:    c.PostForm("text"),
		GroupId: c.PostForm("group"),
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return form
	}
	file, err := fileHeader.Open()
	if err != nil {
		return form
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return form
	}
	form.Image = &forms.ImageUpload{Filename: fileHeader.Filename, Data: data}
	return form
}
