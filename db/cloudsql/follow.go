package cloudsql

import (
	"context"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
	"github.com/upper/db/v4"
)

type FollowDB struct {
	sess db.Session
}

func getFollowDB(sess db.Session) *FollowDB {
	return &FollowDB{sess}
}

// CreateFollow relies on the unique (user_id, author_id) index: a duplicate
// insert is swallowed so concurrent follow requests stay idempotent.
func (fdb *FollowDB) CreateFollow(ctx context.Context, follow *model.Follow) error {
	_, err := fdb.sess.SQL().
		InsertInto("follow").
		Columns("user_id", "author_id").
		Values(follow.UserId, follow.AuthorId).
		ExecContext(ctx)
	if err != nil && appDb.IsDupKeyErr(err) {
		return nil
	}
	return err
}

func (fdb *FollowDB) DeleteFollow(ctx context.Context, follow *model.Follow) error {
	return fdb.sess.WithContext(ctx).
		Collection("follow").
		Find("user_id = ? AND author_id = ?", follow.UserId, follow.AuthorId).
		Delete()
}

func (fdb *FollowDB) FollowExists(ctx context.Context, follow *model.Follow) (bool, error) {
	total, err := fdb.sess.WithContext(ctx).
		Collection("follow").
		Find("user_id = ? AND author_id = ?", follow.UserId, follow.AuthorId).
		Count()
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
