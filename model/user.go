package model

// User holds the local user data relevant to the application (outside of the
// auth provider). Credentials live with the auth provider and are never read
// or written here.
type User struct {
	Id         int64  `db:"id" json:"id"`
	FirebaseId string `db:"firebase_id" json:"-"`
	Username   string `db:"username" json:"username"`
	Email      string `db:"email" json:"email"`
}
