package model

// Follow subscribes a user to an author's posts. The (user, author) pair is
// unique and user never equals author.
type Follow struct {
	UserId   int64 `db:"user_id" json:"userId"`
	AuthorId int64 `db:"author_id" json:"authorId"`
}
