package services

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/quillhq/quill-be/db"
	"github.com/quillhq/quill-be/model"
)

// FirebaseSessions verifies the firebase session cookie and resolves the
// local user row for the authenticated identity. It satisfies
// middleware.Sessions.
type FirebaseSessions struct {
	authClient *auth.Client
	users      db.UserDatabase
}

func NewFirebaseSessions(authClient *auth.Client, users db.UserDatabase) *FirebaseSessions {
	return &FirebaseSessions{authClient: authClient, users: users}
}

// CurrentUser returns (nil, nil) for an invalid or expired cookie and for a
// verified identity with no local user row; both count as unauthenticated.
func (fs *FirebaseSessions) CurrentUser(ctx context.Context, sessionCookie string) (*model.User, error) {
	token, err := fs.authClient.VerifySessionCookie(ctx, sessionCookie)
	if err != nil {
		return nil, nil
	}
	return fs.users.UserByFirebaseId(ctx, token.UID)
}
