package memdb

import (
	"context"

	"github.com/quillhq/quill-be/model"
)

func (mdb *MemDB) CreateFollow(ctx context.Context, follow *model.Follow) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, existing := range mdb.follows {
		if existing.UserId == follow.UserId && existing.AuthorId == follow.AuthorId {
			return nil
		}
	}
	copied := *follow
	mdb.follows = append(mdb.follows, &copied)
	return nil
}

func (mdb *MemDB) DeleteFollow(ctx context.Context, follow *model.Follow) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	kept := mdb.follows[:0]
	for _, existing := range mdb.follows {
		if existing.UserId == follow.UserId && existing.AuthorId == follow.AuthorId {
			continue
		}
		kept = append(kept, existing)
	}
	mdb.follows = kept
	return nil
}

func (mdb *MemDB) FollowExists(ctx context.Context, follow *model.Follow) (bool, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	for _, existing := range mdb.follows {
		if existing.UserId == follow.UserId && existing.AuthorId == follow.AuthorId {
			return true, nil
		}
	}
	return false, nil
}

// CountFollows reports the total number of follow rows. Test helper.
func (mdb *MemDB) CountFollows() int {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	return len(mdb.follows)
}

// CountAllPosts reports the total number of post rows. Test helper.
func (mdb *MemDB) CountAllPosts() int {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	return len(mdb.posts)
}
