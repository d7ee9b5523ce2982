package forms

import "strings"

type CommentForm struct {
	Text string
}

func (f *CommentForm) Validate() (text string, fieldErrs FieldErrors) {
	text = strings.TrimSpace(f.Text)
	if text == "" {
		return "", FieldErrors{"text": ErrTextRequired}
	}
	return text, nil
}
