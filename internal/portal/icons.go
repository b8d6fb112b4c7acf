package portal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/domain"
)

// iconLookup is the outcome of one icon-map fetch. Keeping the three cases
// distinct internally makes the soft-fail policy explicit: only the boundary
// below collapses a failure to "no icon".
type iconLookup struct {
	icon  string
	found bool
	err   error
}

// lookupIcon fetches the singleton icon-map document and looks up a title.
// The document is fetched once per call; caching, if ever wanted, belongs to
// an outer layer.
func (s *Service) lookupIcon(ctx context.Context, title string) iconLookup {
	doc, err := s.store.Get(ctx, database.CollectionAdmin, database.DocIcons)
	if errors.Is(err, domain.ErrNotFound) {
		return iconLookup{}
	}
	if err != nil {
		return iconLookup{err: err}
	}

	icon, ok := doc.FlatStringMap()[title]
	return iconLookup{icon: icon, found: ok}
}

// resolveIcon collapses an icon lookup to its display value. Icons are
// decorative, so a store failure must never block rendering of the link
// itself; it is logged and treated as absence.
func (s *Service) resolveIcon(ctx context.Context, title string) string {
	lookup := s.lookupIcon(ctx, title)
	if lookup.err != nil {
		slog.Warn("icon lookup failed", "title", title, "error", lookup.err)
		return ""
	}
	if !lookup.found {
		return ""
	}
	return lookup.icon
}
