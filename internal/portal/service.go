// Package portal implements the link-aggregation core of the member portal:
// resolving a member's profile, their personal links, the links shared with
// every member, and per-link icon metadata into one ordered, tagged list.
//
// Every call re-reads the document store from scratch. There is no cache and
// no shared mutable state, so staleness is bounded only by time since the
// last render.
package portal

import (
	"context"
	"fmt"

	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/domain"
)

// SharedIDPrefix is prepended to shared link ids so they can never collide
// with a personal link id, even when the titles coincide.
const SharedIDPrefix = "shared-"

// Portal is the caller-facing surface of the aggregation core, consumed by
// the dashboard handlers.
type Portal interface {
	// GetUserProfile resolves the member profile for an email, or nil when no
	// member document matches. A store failure is returned as an error so the
	// caller can report it separately from a links failure.
	GetUserProfile(ctx context.Context, email string) (*domain.MemberProfile, error)

	// GetUserLinks returns the member's personal links followed by the shared
	// links. An unknown email yields the shared links alone.
	GetUserLinks(ctx context.Context, email string) ([]domain.Link, error)

	// IsUserAdmin reports whether the email appears in the administrators
	// document. Advisory only; any failure reads as false.
	IsUserAdmin(ctx context.Context, email string) bool
}

// Service aggregates member, shared and icon documents into display-ready
// links. It is safe for concurrent use; each call is an independent unit of
// work against the store.
type Service struct {
	store         database.DocumentStore
	sharedAccount string
}

var _ Portal = (*Service)(nil)

// NewService creates a new Service. sharedAccount is the id of the reserved
// member document holding the links visible to all members.
func NewService(store database.DocumentStore, sharedAccount string) *Service {
	return &Service{store: store, sharedAccount: sharedAccount}
}

// GetUserLinks aggregates the member's personal links with the shared links,
// personal first. Titles are not deduplicated across the two groups; the id
// prefix keeps the records distinct.
func (s *Service) GetUserLinks(ctx context.Context, email string) ([]domain.Link, error) {
	profile, err := s.GetUserProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	var personal []domain.Link
	if profile != nil {
		personal, err = s.buildLinks(ctx, profile.Links, false)
		if err != nil {
			return nil, fmt.Errorf("building personal links: %w", err)
		}
	}

	shared, err := s.SharedLinks(ctx)
	if err != nil {
		return nil, err
	}

	return append(personal, shared...), nil
}
