package feed

import (
	"context"
	"fmt"
	"testing"

	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/db/memdb"
	"github.com/quillhq/quill-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T, database *memdb.MemDB, count int) {
	t.Helper()
	authorId, err := database.CreateUser(context.Background(), &model.User{Username: "alice"})
	require.NoError(t, err)
	for i := 0; i < count; i++ {
		_, err := database.CreatePost(context.Background(), &db.CreatePost{
			Text:     fmt.Sprintf("post %d", i),
			AuthorId: authorId,
		})
		require.NoError(t, err)
	}
}

func TestPaginateSplitsIntoPages(t *testing.T) {
	database := memdb.GetDatabase()
	seedPosts(t, database, 13)

	first, err := Paginate(context.Background(), database, nil, "1", 10)
	require.NoError(t, err)
	assert.Len(t, first.Posts, 10)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.TotalPages)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	second, err := Paginate(context.Background(), database, nil, "2", 10)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 3)
	assert.True(t, second.HasPrev())
	assert.False(t, second.HasNext())
	assert.Equal(t, 1, second.PrevNumber())
}

func TestPaginateMalformedPageFallsBackToFirst(t *testing.T) {
	database := memdb.GetDatabase()
	seedPosts(t, database, 3)

	for _, raw := range []string{"", "bogus", "0", "-2"} {
		page, err := Paginate(context.Background(), database, nil, raw, 10)
		require.NoError(t, err, raw)
		assert.Equal(t, 1, page.Number, raw)
		assert.Len(t, page.Posts, 3, raw)
	}
}

func TestPaginateClampsBeyondLastPage(t *testing.T) {
	database := memdb.GetDatabase()
	seedPosts(t, database, 13)

	page, err := Paginate(context.Background(), database, nil, "99", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Len(t, page.Posts, 3)
}

func TestPaginateEmptyListing(t *testing.T) {
	database := memdb.GetDatabase()

	page, err := Paginate(context.Background(), database, nil, "1", 10)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrev())
	assert.False(t, page.HasNext())
}

func TestPaginateNewestFirst(t *testing.T) {
	database := memdb.GetDatabase()
	seedPosts(t, database, 3)

	page, err := Paginate(context.Background(), database, nil, "1", 10)
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, "post 2", page.Posts[0].Text)
	assert.Equal(t, "post 0", page.Posts[2].Text)
}
