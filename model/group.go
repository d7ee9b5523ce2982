package model

// Group is an administratively created topic a post can be tagged with.
// The slug is the URL-safe unique identifier used in group feed paths.
type Group struct {
	Id          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}
