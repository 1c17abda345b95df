// Package auth provides the signup and login forms plus the injectable
// primitives they depend on: a user store, an authenticator, and a session
// manager. Persistence is owned by the surrounding application; the reference
// implementations here back tests, examples, and small deployments.
package auth

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned by stores when no user matches.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrDuplicateUser is returned by stores on username collisions.
	ErrDuplicateUser = errors.New("auth: user already exists")
)

// User is the registry record the forms layer works with. Signups use the
// email address as the username.
type User struct {
	ID       string
	Username string
	Email    string
	Active   bool
}

// UserStore is the external user registry contract.
type UserStore interface {
	Get(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, username, email, password string) (*User, error)
	SetActive(ctx context.Context, username string, active bool) error
}

// Authenticator resolves credentials to a user. A plain mismatch returns
// (nil, nil); inactive users are still returned so callers can distinguish
// bad credentials from disabled accounts.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

// SessionManager establishes a browser session for an authenticated user.
type SessionManager interface {
	Login(w http.ResponseWriter, user *User) error
}
