package forms

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
)

// ImageUpload is a raw submitted file.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// PostForm carries the raw submitted values of the create/edit post form.
// GroupId stays a string until validation resolves it.
type PostForm struct {
	Text    string
	GroupId string
	Image   *ImageUpload
}

// PostData is a validated form: the group reference is resolved and the
// image payload is known to be a well-formed image.
type PostData struct {
	Text  string
	Group *model.Group
	Image *ImageUpload
}

func (f *PostForm) Validate(ctx context.Context, groups db.GroupDatabase) (*PostData, FieldErrors, error) {
	fieldErrs := FieldErrors{}
	data := &PostData{Text: strings.TrimSpace(f.Text)}

	if data.Text == "" {
		fieldErrs["text"] = ErrTextRequired
	}

	if f.GroupId != "" {
		groupId, err := strconv.ParseInt(f.GroupId, 10, 64)
		if err != nil {
			fieldErrs["group"] = ErrMalformedData
		} else {
			group, err := groups.GroupById(ctx, groupId)
			if err != nil {
				return nil, nil, err
			}
			if group == nil {
				fieldErrs["group"] = ErrUnknownGroup
			}
			data.Group = group
		}
	}

	if f.Image != nil {
		if msg := validateImage(f.Image); msg != "" {
			fieldErrs["image"] = msg
		}
		data.Image = f.Image
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}
	return data, nil, nil
}

func validateImage(image *ImageUpload) string {
	if len(image.Data) == 0 {
		return ErrFileEmpty
	}
	if !strings.HasPrefix(http.DetectContentType(image.Data), "image/") {
		return ErrNotAnImage
	}
	return ""
}
