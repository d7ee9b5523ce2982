package cloudsql

import (
	"context"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
	"github.com/upper/db/v4"
)

type GroupDB struct {
	sess db.Session
}

func getGroupDB(sess db.Session) *GroupDB {
	return &GroupDB{sess}
}

func (gdb *GroupDB) CreateGroup(ctx context.Context, req *appDb.CreateGroup) (int64, error) {
	res, err := gdb.sess.SQL().
		InsertInto("blog_group").
		Columns("title", "slug", "description").
		Values(req.Title, req.Slug, req.Description).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (gdb *GroupDB) GroupById(ctx context.Context, id int64) (*model.Group, error) {
	return gdb.groupWhere(ctx, "id = ?", id)
}

func (gdb *GroupDB) GroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	return gdb.groupWhere(ctx, "slug = ?", slug)
}

func (gdb *GroupDB) Groups(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	return groups, gdb.sess.SQL().
		Select("*").
		From("blog_group").
		OrderBy("title").
		IteratorContext(ctx).
		All(&groups)
}

func (gdb *GroupDB) groupWhere(ctx context.Context, cond string, arg interface{}) (*model.Group, error) {
	var group model.Group
	if err := gdb.sess.SQL().
		Select("*").
		From("blog_group").
		Where(cond, arg).
		IteratorContext(ctx).
		One(&group); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}
