package portal

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/domain"
)

// IsUserAdmin reports whether the email appears in the administrators
// document. Admin status only decorates the UI and is never a security
// boundary here, so every failure mode fails closed to false: a missing
// document, a store error, or an administrators field of the wrong shape.
func (s *Service) IsUserAdmin(ctx context.Context, email string) bool {
	doc, err := s.store.Get(ctx, database.CollectionAdmin, database.DocAdministrators)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("admin lookup failed", "email", email, "error", err)
		}
		return false
	}

	return slices.Contains(doc.StringSlice("administrators"), email)
}
