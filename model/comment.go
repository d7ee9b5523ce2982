package model

import "time"

// Comment is immutable once created. A post owns its comments ordered by
// creation time.
type Comment struct {
	Id        int64     `json:"id"`
	PostId    int64     `json:"postId"`
	Author    *User     `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
