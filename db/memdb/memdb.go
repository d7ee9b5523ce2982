// Package memdb is an in-memory implementation of db.Database. It backs the
// HTTP test suite and local development without a MySQL instance; every
// operation honors the same ordering and uniqueness semantics as the
// cloudsql implementation.
package memdb

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
)

type MemDB struct {
	mu       sync.Mutex
	nextId   int64
	now      time.Time
	users    []*model.User
	groups   []*model.Group
	posts    []*post
	comments []*comment
	follows  []*model.Follow
}

type post struct {
	id        int64
	text      string
	authorId  int64
	groupId   *int64
	imageBlob string
	createdAt time.Time
}

type comment struct {
	id        int64
	postId    int64
	authorId  int64
	text      string
	createdAt time.Time
}

func GetDatabase() *MemDB {
	return &MemDB{now: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (mdb *MemDB) Close() error {
	return nil
}

// tick advances the fake clock so consecutive writes never share a
// timestamp. Callers must hold mu.
func (mdb *MemDB) tick() time.Time {
	mdb.now = mdb.now.Add(time.Second)
	return mdb.now
}

func (mdb *MemDB) nextIdLocked() int64 {
	mdb.nextId++
	return mdb.nextId
}

func (mdb *MemDB) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, existing := range mdb.users {
		if existing.Username == user.Username {
			return 0, fmt.Errorf("memdb: duplicate username %q", user.Username)
		}
	}
	stored := *user
	stored.Id = mdb.nextIdLocked()
	mdb.users = append(mdb.users, &stored)
	return stored.Id, nil
}

func (mdb *MemDB) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, user := range mdb.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) UserByFirebaseId(ctx context.Context, firebaseId string) (*model.User, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, user := range mdb.users {
		if user.FirebaseId == firebaseId {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) CreateGroup(ctx context.Context, req *appDb.CreateGroup) (int64, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, existing := range mdb.groups {
		if existing.Slug == req.Slug {
			return 0, fmt.Errorf("memdb: duplicate slug %q", req.Slug)
		}
	}
	group := &model.Group{
		Id:          mdb.nextIdLocked(),
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	}
	mdb.groups = append(mdb.groups, group)
	return group.Id, nil
}

func (mdb *MemDB) GroupById(ctx context.Context, id int64) (*model.Group, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, group := range mdb.groups {
		if group.Id == id {
			copied := *group
			return &copied, nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) GroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, group := range mdb.groups {
		if group.Slug == slug {
			copied := *group
			return &copied, nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) Groups(ctx context.Context) ([]*model.Group, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	groups := make([]*model.Group, len(mdb.groups))
	for i, group := range mdb.groups {
		copied := *group
		groups[i] = &copied
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups, nil
}
