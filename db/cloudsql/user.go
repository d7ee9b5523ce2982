package cloudsql

import (
	"context"

	"github.com/quillhq/quill-be/model"
	"github.com/upper/db/v4"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	res, err := udb.sess.SQL().
		InsertInto("person").
		Columns("firebase_id", "username", "email").
		Values(user.FirebaseId, user.Username, user.Email).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (udb *UserDB) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return udb.userWhere(ctx, "username = ?", username)
}

func (udb *UserDB) UserByFirebaseId(ctx context.Context, firebaseId string) (*model.User, error) {
	return udb.userWhere(ctx, "firebase_id = ?", firebaseId)
}

func (udb *UserDB) userWhere(ctx context.Context, cond string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("person").
		Where(cond, arg).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
