package routes

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/quillhq/quill-be/cache"
	"github.com/quillhq/quill-be/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeFeedIsPublic(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "alice")
	app.seedPost(t, author, nil, "hello world")

	recorder := app.get("/", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "hello world")
}

func TestFeedPagination(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "alice")
	group := app.seedGroup(t, "Essays", "essays")
	for i := 0; i < 13; i++ {
		app.seedPost(t, author, group, fmt.Sprintf("post number %d", i))
	}

	for _, path := range []string{"/group/essays/", "/profile/alice/"} {
		first := app.get(path, "")
		require.Equal(t, http.StatusOK, first.Code, path)
		assert.Equal(t, 10, strings.Count(first.Body.String(), "<article>"), path)

		second := app.get(path+"?page=2", "")
		require.Equal(t, http.StatusOK, second.Code, path)
		assert.Equal(t, 3, strings.Count(second.Body.String(), "<article>"), path)
	}
}

func TestFeedPaginationClampsPageParam(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "alice")
	for i := 0; i < 3; i++ {
		app.seedPost(t, author, nil, fmt.Sprintf("post %d", i))
	}

	for _, raw := range []string{"?page=0", "?page=99", "?page=bogus"} {
		recorder := app.get("/profile/alice/"+raw, "")
		assert.Equal(t, http.StatusOK, recorder.Code, raw)
		assert.Equal(t, 3, strings.Count(recorder.Body.String(), "<article>"), raw)
	}
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	app := newTestApp(t)

	recorder := app.get("/group/no-such-group/", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Page not found")
}

func TestGroupFeedExcludesOtherGroups(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "alice")
	essays := app.seedGroup(t, "Essays", "essays")
	stories := app.seedGroup(t, "Stories", "stories")
	app.seedPost(t, author, essays, "an essay")
	app.seedPost(t, author, stories, "a story")

	recorder := app.get("/group/essays/", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "an essay")
	assert.NotContains(t, recorder.Body.String(), "a story")
}

func TestProfileUnknownUsername(t *testing.T) {
	app := newTestApp(t)

	recorder := app.get("/profile/nobody/", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestProfileShowsFollowState(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "alice")
	viewer := app.seedUser(t, "bob")
	app.seedPost(t, author, nil, "a post")
	token := app.loginAs(viewer)

	before := app.get("/profile/alice/", token)
	require.Equal(t, http.StatusOK, before.Code)
	assert.Contains(t, before.Body.String(), "/profile/alice/follow/")

	app.get("/profile/alice/follow/", token)

	after := app.get("/profile/alice/", token)
	require.Equal(t, http.StatusOK, after.Code)
	assert.Contains(t, after.Body.String(), "/profile/alice/unfollow/")
}

func TestHomeFeedCacheReplaysStaleBody(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "alice")
	postId := app.seedPost(t, author, nil, "original text")

	first := app.get("/", "")
	require.Equal(t, http.StatusOK, first.Code)
	require.Contains(t, first.Body.String(), "original text")

	require.NoError(t, app.db.UpdatePost(context.Background(), postId, &db.UpdatePost{
		Text: "changed text",
	}))

	second := app.get("/", "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())

	app.cache.Clear(context.Background(), cache.HomeFeedKey)

	third := app.get("/", "")
	require.Equal(t, http.StatusOK, third.Code)
	assert.Contains(t, third.Body.String(), "changed text")
}

func TestFollowFeedRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	recorder := app.get("/follow/", "")

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/auth/login/?next=/follow/", recorder.Header().Get("Location"))
}

func TestFollowFeedFiltersByFollowedAuthors(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "alice")
	follower := app.seedUser(t, "bob")
	stranger := app.seedUser(t, "carol")
	app.seedPost(t, author, nil, "a post for the feed")

	followerToken := app.loginAs(follower)
	strangerToken := app.loginAs(stranger)
	app.get("/profile/alice/follow/", followerToken)

	followerFeed := app.get("/follow/", followerToken)
	require.Equal(t, http.StatusOK, followerFeed.Code)
	assert.Contains(t, followerFeed.Body.String(), "a post for the feed")

	strangerFeed := app.get("/follow/", strangerToken)
	require.Equal(t, http.StatusOK, strangerFeed.Code)
	assert.NotContains(t, strangerFeed.Body.String(), "a post for the feed")
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	app := newTestApp(t)

	recorder := app.get("/nonexist-page/", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Page not found")
	assert.Contains(t, recorder.Body.String(), "/nonexist-page/")
}
