package forms

import (
	"context"
	"strconv"
	"testing"

	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/db/memdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gifHeader is enough of a GIF for content sniffing to recognize it.
var gifHeader = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")

func TestPostFormValid(t *testing.T) {
	database := memdb.GetDatabase()
	groupId, err := database.CreateGroup(context.Background(), &db.CreateGroup{
		Title: "Essays",
		Slug:  "essays",
	})
	require.NoError(t, err)

	form := &PostForm{
		Text:    "  a post  ",
		GroupId: strconv.FormatInt(groupId, 10),
	}
	data, fieldErrs, err := form.Validate(context.Background(), database)

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, "a post", data.Text)
	require.NotNil(t, data.Group)
	assert.Equal(t, "essays", data.Group.Slug)
}

func TestPostFormNoGroup(t *testing.T) {
	form := &PostForm{Text: "a post"}
	data, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Nil(t, data.Group)
}

func TestPostFormBlankText(t *testing.T) {
	form := &PostForm{Text: "   "}
	data, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, ErrTextRequired, fieldErrs["text"])
}

func TestPostFormUnknownGroup(t *testing.T) {
	form := &PostForm{Text: "a post", GroupId: "42"}
	data, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, ErrUnknownGroup, fieldErrs["group"])
}

func TestPostFormMalformedGroupId(t *testing.T) {
	form := &PostForm{Text: "a post", GroupId: "not-a-number"}
	data, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, ErrMalformedData, fieldErrs["group"])
}

func TestPostFormEmptyImage(t *testing.T) {
	form := &PostForm{
		Text:  "a post",
		Image: &ImageUpload{Filename: "empty.gif"},
	}
	_, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	assert.Equal(t, ErrFileEmpty, fieldErrs["image"])
}

func TestPostFormNonImageUpload(t *testing.T) {
	form := &PostForm{
		Text:  "a post",
		Image: &ImageUpload{Filename: "notes.txt", Data: []byte("plain text")},
	}
	_, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	assert.Equal(t, ErrNotAnImage, fieldErrs["image"])
}

func TestPostFormValidImage(t *testing.T) {
	form := &PostForm{
		Text:  "a post",
		Image: &ImageUpload{Filename: "small.gif", Data: gifHeader},
	}
	data, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, data.Image)
	assert.Equal(t, "small.gif", data.Image.Filename)
}

func TestPostFormCollectsAllErrors(t *testing.T) {
	form := &PostForm{
		Text:    "  ",
		GroupId: "42",
		Image:   &ImageUpload{Filename: "empty.gif"},
	}
	_, fieldErrs, err := form.Validate(context.Background(), memdb.GetDatabase())

	require.NoError(t, err)
	assert.True(t, fieldErrs.Has("text"))
	assert.True(t, fieldErrs.Has("group"))
	assert.True(t, fieldErrs.Has("image"))
}

func TestCommentFormTrimsText(t *testing.T) {
	form := &CommentForm{Text: "  nice post  "}
	text, fieldErrs := form.Validate()

	assert.Empty(t, fieldErrs)
	assert.Equal(t, "nice post", text)
}

func TestCommentFormBlankText(t *testing.T) {
	form := &CommentForm{Text: "   "}
	text, fieldErrs := form.Validate()

	assert.Empty(t, text)
	assert.Equal(t, ErrTextRequired, fieldErrs["text"])
}
