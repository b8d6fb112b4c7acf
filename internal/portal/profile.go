package portal

import (
	"context"
	"fmt"

	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/domain"
)

// GetUserProfile scans the members collection for the first document whose
// email field equals the argument, case-sensitive. Member documents are keyed
// by opaque ids, not by email, so this is a full-collection scan and the
// system's scalability ceiling. The administrative write path keeps emails
// unique across members.
func (s *Service) GetUserProfile(ctx context.Context, email string) (*domain.MemberProfile, error) {
	docs, err := s.store.List(ctx, database.CollectionMembers)
	if err != nil {
		return nil, fmt.Errorf("resolving profile for %q: %w", email, err)
	}

	for i := range docs {
		if docs[i].String("email") == email {
			return profileFromDocument(&docs[i]), nil
		}
	}

	// No match is a normal outcome, not an error: a valid session identity
	// without a member document simply has no personal links.
	return nil, nil
}

// profileFromDocument normalizes a member document. A missing or malformed
// links field reads as an empty map.
func profileFromDocument(doc *database.Document) *domain.MemberProfile {
	links := doc.StringMap("links")
	if links == nil {
		links = map[string]string{}
	}
	return &domain.MemberProfile{
		DisplayName: doc.String("displayName"),
		Email:       doc.String("email"),
		Links:       links,
	}
}
