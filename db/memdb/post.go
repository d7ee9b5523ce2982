package memdb

import (
	"context"
	"sort"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
)

func (mdb *MemDB) CreatePost(ctx context.Context, req *appDb.CreatePost) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	stored := &post{
		id:        mdb.nextIdLocked(),
		text:      req.Text,
		authorId:  req.AuthorId,
		groupId:   req.GroupId,
		imageBlob: req.ImageBlob,
		createdAt: mdb.tick(),
	}
	mdb.posts = append(mdb.posts, stored)
	return stored.id, nil
}

func (mdb *MemDB) UpdatePost(ctx context.Context, id int64, req *appDb.UpdatePost) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, stored := range mdb.posts {
		if stored.id == id {
			stored.text = req.Text
			stored.groupId = req.GroupId
			if req.ImageBlob != "" {
				stored.imageBlob = req.ImageBlob
			}
			return nil
		}
	}
	return nil
}

func (mdb *MemDB) PostById(ctx context.Context, id int64) (*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, stored := range mdb.posts {
		if stored.id == id {
			return mdb.buildPostLocked(stored), nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) Posts(ctx context.Context, filter *appDb.PostsFilter, limit, offset int) ([]*model.Post, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	matched := mdb.matchPostsLocked(filter)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].createdAt.Equal(matched[j].createdAt) {
			return matched[i].createdAt.After(matched[j].createdAt)
		}
		return matched[i].id > matched[j].id
	})
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	posts := make([]*model.Post, len(matched))
	for i, stored := range matched {
		posts[i] = mdb.buildPostLocked(stored)
	}
	return posts, nil
}

func (mdb *MemDB) CountPosts(ctx context.Context, filter *appDb.PostsFilter) (int, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	return len(mdb.matchPostsLocked(filter)), nil
}

func (mdb *MemDB) matchPostsLocked(filter *appDb.PostsFilter) []*post {
	if filter == nil {
		filter = &appDb.PostsFilter{}
	}
	followed := make(map[int64]bool)
	if filter.FollowedBy != nil {
		for _, follow := range mdb.follows {
			if follow.UserId == *filter.FollowedBy {
				followed[follow.AuthorId] = true
			}
		}
	}
	var matched []*post
	for _, stored := range mdb.posts {
		if filter.GroupId != nil && (stored.groupId == nil || *stored.groupId != *filter.GroupId) {
			continue
		}
		if filter.AuthorId != nil && stored.authorId != *filter.AuthorId {
			continue
		}
		if filter.FollowedBy != nil && !followed[stored.authorId] {
			continue
		}
		matched = append(matched, stored)
	}
	return matched
}

func (mdb *MemDB) buildPostLocked(stored *post) *model.Post {
	built := &model.Post{
		Id:        stored.id,
		Text:      stored.text,
		ImageBlob: stored.imageBlob,
		CreatedAt: stored.createdAt,
	}
	for _, user := range mdb.users {
		if user.Id == stored.authorId {
			copied := *user
			built.Author = &copied
			break
		}
	}
	if stored.groupId != nil {
		for _, group := range mdb.groups {
			if group.Id == *stored.groupId {
				copied := *group
				built.Group = &copied
				break
			}
		}
	}
	return built
}
