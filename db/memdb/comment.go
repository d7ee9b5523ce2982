package memdb

import (
	"context"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
)

func (mdb *MemDB) CreateComment(ctx context.Context, req *appDb.CreateComment) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	stored := &comment{
		id:        mdb.nextIdLocked(),
		postId:    req.PostId,
		authorId:  req.AuthorId,
		text:      req.Text,
		createdAt: mdb.tick(),
	}
	mdb.comments = append(mdb.comments, stored)
	return stored.id, nil
}

func (mdb *MemDB) CommentsByPost(ctx context.Context, postId int64) ([]*model.Comment, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	var comments []*model.Comment
	for _, stored := range mdb.comments {
		if stored.postId != postId {
			continue
		}
		built := &model.Comment{
			Id:        stored.id,
			PostId:    stored.postId,
			Text:      stored.text,
			CreatedAt: stored.createdAt,
		}
		for _, user := range mdb.users {
			if user.Id == stored.authorId {
				copied := *user
				built.Author = &copied
				break
			}
		}
		comments = append(comments, built)
	}
	return comments, nil
}
