package cloudsql

import (
	"context"
	"database/sql"
	"time"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/db/dao"
	"github.com/quillhq/quill-be/model"
	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

type flattenedPost struct {
	Id             int64          `db:"id"`
	Text           string         `db:"text"`
	ImageBlob      string         `db:"image_blob"`
	CreatedAt      time.Time      `db:"created_at"`
	AuthorId       int64          `db:"author_id"`
	AuthorUsername string         `db:"author_username"`
	AuthorEmail    string         `db:"author_email"`
	GroupId        dao.NullInt64  `db:"group_id"`
	GroupTitle     sql.NullString `db:"group_title"`
	GroupSlug      sql.NullString `db:"group_slug"`
}

var postColumns = []interface{}{
	"p.id",
	"p.text",
	"p.image_blob",
	"p.created_at",
	"u.id AS author_id",
	"u.username AS author_username",
	"u.email AS author_email",
	"g.id AS group_id",
	"g.title AS group_title",
	"g.slug AS group_slug",
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *appDb.CreatePost) (int64, error) {
	res, err := pdb.sess.SQL().
		InsertInto("post").
		Columns("text", "author_id", "group_id", "image_blob").
		Values(req.Text, req.AuthorId, req.GroupId, req.ImageBlob).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (pdb *PostDB) UpdatePost(ctx context.Context, id int64, req *appDb.UpdatePost) error {
	return pdb.sess.TxContext(ctx, func(sess db.Session) error {
		if _, err := sess.SQL().
			Update("post").
			Set("text = ?, group_id = ?", req.Text, req.GroupId).
			Where("id = ?", id).
			ExecContext(ctx); err != nil {
			return err
		}
		if req.ImageBlob == "" {
			return nil
		}
		_, err := sess.SQL().
			Update("post").
			Set("image_blob = ?", req.ImageBlob).
			Where("id = ?", id).
			ExecContext(ctx)
		return err
	}, nil)
}

func (pdb *PostDB) PostById(ctx context.Context, id int64) (*model.Post, error) {
	var post flattenedPost
	if err := pdb.sess.SQL().
		Select(postColumns...).
		From("post AS p").
		Join("person AS u").On("p.author_id = u.id").
		LeftJoin("blog_group AS g").On("p.group_id = g.id").
		Where("p.id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildPostFromFlattened(&post), nil
}

func (pdb *PostDB) Posts(ctx context.Context, filter *appDb.PostsFilter, limit, offset int) ([]*model.Post, error) {
	if filter == nil {
		filter = &appDb.PostsFilter{}
	}
	var flattenedPosts []flattenedPost
	if err := pdb.sess.SQL().
		Select(postColumns...).
		From("post AS p").
		Join("person AS u").On("p.author_id = u.id").
		LeftJoin("blog_group AS g").On("p.group_id = g.id").
		Where("(? IS NULL OR p.group_id = ?)", filter.GroupId, filter.GroupId).
		And("(? IS NULL OR p.author_id = ?)", filter.AuthorId, filter.AuthorId).
		And("(? IS NULL OR EXISTS (SELECT 1 FROM follow AS f WHERE f.user_id = ? AND f.author_id = p.author_id))",
			filter.FollowedBy, filter.FollowedBy).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(limit).
		Offset(offset).
		IteratorContext(ctx).
		All(&flattenedPosts); err != nil {
		return nil, err
	}
	posts := make([]*model.Post, len(flattenedPosts))
	for i := range flattenedPosts {
		posts[i] = buildPostFromFlattened(&flattenedPosts[i])
	}
	return posts, nil
}

func (pdb *PostDB) CountPosts(ctx context.Context, filter *appDb.PostsFilter) (int, error) {
	if filter == nil {
		filter = &appDb.PostsFilter{}
	}
	row, err := pdb.sess.SQL().QueryRowContext(ctx, `
SELECT COUNT(*) FROM post AS p
	WHERE (? IS NULL OR p.group_id = ?)
	AND (? IS NULL OR p.author_id = ?)
	AND (? IS NULL OR EXISTS (SELECT 1 FROM follow AS f WHERE f.user_id = ? AND f.author_id = p.author_id))
`, filter.GroupId, filter.GroupId, filter.AuthorId, filter.AuthorId, filter.FollowedBy, filter.FollowedBy)
	if err != nil {
		return 0, err
	}
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func buildPostFromFlattened(post *flattenedPost) *model.Post {
	var group *model.Group
	if post.GroupId.Valid {
		group = &model.Group{
			Id:    post.GroupId.AsInt(),
			Title: post.GroupTitle.String,
			Slug:  post.GroupSlug.String,
		}
	}
	return &model.Post{
		Id:   post.Id,
		Text: post.Text,
		Author: &model.User{
			Id:       post.AuthorId,
			Username: post.AuthorUsername,
			Email:    post.AuthorEmail,
		},
		Group:     group,
		ImageBlob: post.ImageBlob,
		CreatedAt: post.CreatedAt,
	}
}
