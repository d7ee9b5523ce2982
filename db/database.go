package db

import (
	"context"

	"github.com/quillhq/quill-be/model"

	_ "github.com/go-sql-driver/mysql"
)

type Database interface {
	UserDatabase
	GroupDatabase
	PostDatabase
	CommentDatabase
	FollowDatabase
	Close() error
}

type CreatePost struct {
	Text      string
	AuthorId  int64
	GroupId   *int64
	ImageBlob string
}

type UpdatePost struct {
	Text    string
	GroupId *int64
	// ImageBlob replaces the stored blob name when non-empty; an empty value
	// keeps the existing image.
	ImageBlob string
}

type CreateComment struct {
	PostId   int64
	AuthorId int64
	Text     string
}

type CreateGroup struct {
	Title       string
	Slug        string
	Description string
}

// PostsFilter narrows a post listing. Nil fields are ignored. FollowedBy
// restricts the listing to posts whose author is followed by the given user.
type PostsFilter struct {
	GroupId    *int64
	AuthorId   *int64
	FollowedBy *int64
}

type UserDatabase interface {
	CreateUser(ctx context.Context, user *model.User) (userId int64, err error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	UserByFirebaseId(ctx context.Context, firebaseId string) (*model.User, error)
}

type GroupDatabase interface {
	CreateGroup(ctx context.Context, req *CreateGroup) (groupId int64, err error)
	GroupById(ctx context.Context, id int64) (*model.Group, error)
	GroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	Groups(ctx context.Context) ([]*model.Group, error)
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	UpdatePost(ctx context.Context, id int64, req *UpdatePost) error
	PostById(ctx context.Context, id int64) (*model.Post, error)
	// Posts lists newest-first (created_at, id descending as a tiebreak).
	Posts(ctx context.Context, filter *PostsFilter, limit, offset int) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter *PostsFilter) (int, error)
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	CommentsByPost(ctx context.Context, postId int64) ([]*model.Comment, error)
}

type FollowDatabase interface {
	// CreateFollow is idempotent: following an already-followed author is a
	// no-op, not an error.
	CreateFollow(ctx context.Context, follow *model.Follow) error
	// DeleteFollow is idempotent.
	DeleteFollow(ctx context.Context, follow *model.Follow) error
	FollowExists(ctx context.Context, follow *model.Follow) (bool, error)
}
