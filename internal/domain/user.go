package domain

import (
	"context"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// User represents an authenticated account. Accounts exist purely for
// sign-in; everything the dashboard shows is resolved from the member
// documents keyed by the account's email.
type User struct {
	ID    *surrealmodels.RecordID `json:"id,omitempty"`
	Email string                  `json:"email"`
	Name  *string                 `json:"name,omitempty"`
}

// UserRepository defines the contract for account authentication. It lives in
// the domain because it's a requirement OF the domain, not of the database
// implementation.
type UserRepository interface {
	SignUp(ctx context.Context, user *User, password string) (string, error)
	SignIn(ctx context.Context, user *User, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*User, error)
}
