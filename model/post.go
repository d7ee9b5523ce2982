package model

import "time"

// PostLabelLen is how many characters of the text serve as the post's
// display label.
const PostLabelLen = 15

type Post struct {
	Id        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    *User     `json:"author"`
	Group     *Group    `json:"group,omitempty"`
	ImageBlob string    `json:"imageBlob,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Label returns the truncated rendering of the text used wherever the post
// is referenced by name.
func (p *Post) Label() string {
	runes := []rune(p.Text)
	if len(runes) <= PostLabelLen {
		return p.Text
	}
	return string(runes[:PostLabelLen])
}
