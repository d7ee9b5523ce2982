// Package forms holds the explicit form schemas: each form enumerates its
// fields and validates them in a pure function returning either resolved
// data or field-level errors.
package forms

// FieldErrors maps field name to a single human-readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

const (
	ErrTextRequired  = "text is required"
	ErrUnknownGroup  = "group does not exist"
	ErrFileEmpty     = "file is empty"
	ErrNotAnImage    = "file is not a valid image"
	ErrMalformedData = "malformed value"
)
