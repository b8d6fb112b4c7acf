package portal

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/domain"
)

// SharedLinks resolves the links visible to every member. They live in a
// reserved member-shaped document whose id is the configured shared-account
// constant; if that document is absent the result is simply empty.
func (s *Service) SharedLinks(ctx context.Context) ([]domain.Link, error) {
	docs, err := s.store.List(ctx, database.CollectionMembers)
	if err != nil {
		return nil, fmt.Errorf("resolving shared links: %w", err)
	}

	for i := range docs {
		if docs[i].ID == s.sharedAccount {
			links, err := s.buildLinks(ctx, docs[i].StringMap("links"), true)
			if err != nil {
				return nil, fmt.Errorf("building shared links: %w", err)
			}
			return links, nil
		}
	}

	return nil, nil
}

// buildLinks turns a title-to-URL map into tagged Link records. Icon lookups are
// independent reads, so they fan out concurrently and fan in before assembly.
// The emitted order is sorted by title: map iteration order would make the
// result nondeterministic between calls.
func (s *Service) buildLinks(ctx context.Context, links map[string]string, shared bool) ([]domain.Link, error) {
	titles := make([]string, 0, len(links))
	for title := range links {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	out := make([]domain.Link, len(titles))
	g, gctx := errgroup.WithContext(ctx)
	for i, title := range titles {
		g.Go(func() error {
			link := domain.Link{
				ID:       title,
				Title:    title,
				URL:      links[title],
				IsShared: shared,
			}
			if shared {
				link.ID = SharedIDPrefix + title
			}
			link.Icon = s.resolveIcon(gctx, title)
			out[i] = link
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
