package cloudsql

import (
	"context"
	"time"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

type flattenedComment struct {
	Id             int64     `db:"id"`
	PostId         int64     `db:"post_id"`
	Text           string    `db:"text"`
	CreatedAt      time.Time `db:"created_at"`
	AuthorId       int64     `db:"author_id"`
	AuthorUsername string    `db:"author_username"`
}

func (cdb *CommentDB) CreateComment(ctx context.Context, req *appDb.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comment").
		Columns("post_id", "author_id", "text").
		Values(req.PostId, req.AuthorId, req.Text).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (cdb *CommentDB) CommentsByPost(ctx context.Context, postId int64) ([]*model.Comment, error) {
	var flattenedComments []flattenedComment
	if err := cdb.sess.SQL().
		Select("c.id", "c.post_id", "c.text", "c.created_at",
			"u.id AS author_id", "u.username AS author_username").
		From("comment AS c").
		Join("person AS u").On("c.author_id = u.id").
		Where("c.post_id = ?", postId).
		OrderBy("c.created_at", "c.id").
		IteratorContext(ctx).
		All(&flattenedComments); err != nil {
		return nil, err
	}
	comments := make([]*model.Comment, len(flattenedComments))
	for i, flattened := range flattenedComments {
		comments[i] = &model.Comment{
			Id:     flattened.Id,
			PostId: flattened.PostId,
			Author: &model.User{
				Id:       flattened.AuthorId,
				Username: flattened.AuthorUsername,
			},
			Text:      flattened.Text,
			CreatedAt: flattened.CreatedAt,
		}
	}
	return comments, nil
}
