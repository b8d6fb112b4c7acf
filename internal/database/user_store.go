package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/surrealdb/surrealdb.go"
	"github.com/wassociates/portal/internal/domain"
)

// SurrealUserStore encapsulates account authentication against SurrealDB
// record access. Tokens returned by SignUp/SignIn are the session currency
// carried in the auth cookie.
type SurrealUserStore struct {
	db     *surrealdb.DB
	ns     string
	dbName string
}

// NewSurrealUserStore creates a new SurrealUserStore.
func NewSurrealUserStore(db *surrealdb.DB, ns, dbName string) *SurrealUserStore {
	return &SurrealUserStore{db: db, ns: ns, dbName: dbName}
}

func (s *SurrealUserStore) SignUp(ctx context.Context, user *domain.User, password string) (string, error) {
	// Format matches the JavaScript SDK's implementation
	token, err := s.db.SignUp(ctx, map[string]any{
		"ns":       s.ns,
		"db":       s.dbName,
		"ac":       "account", // access control namespace
		"email":    user.Email,
		"password": password,
	})

	// Check for a specific duplicate user error from the database driver.
	if err != nil && strings.Contains(err.Error(), "already exists") {
		return "", domain.ErrUserAlreadyExists
	}

	if err == nil && token != "" {
		slog.Info("Successfully signed up user", "email", user.Email)
	}

	return token, err
}

func (s *SurrealUserStore) SignIn(ctx context.Context, user *domain.User, password string) (string, error) {
	token, err := s.db.SignIn(ctx, map[string]any{
		"ns":       s.ns,
		"db":       s.dbName,
		"ac":       "account",
		"email":    user.Email,
		"password": password,
	})

	if err == nil && token != "" {
		slog.Info("Successfully signed in user", "email", user.Email)
	}

	return token, err
}

// Authenticate validates a session token and returns the associated user.
func (s *SurrealUserStore) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	// This validates the token against the 'account' scope and sets the auth
	// context for subsequent queries on this connection.
	if err := s.db.Authenticate(ctx, token); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	users, err := Query[domain.User](ctx, s.db, "SELECT * FROM $auth", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}

	if len(users) == 0 || users[0].ID == nil {
		return nil, fmt.Errorf("no authenticated user found")
	}

	return &users[0], nil
}
