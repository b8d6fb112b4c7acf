package dashboard

import "github.com/wassociates/portal/internal/domain"

// Data is the View Model for the dashboard page. The handler resolves the
// profile, admin flag and links separately so each can fail independently.
type Data struct {
	// DisplayName falls back to the session email when no member profile
	// exists for the account.
	DisplayName string
	Email       string
	IsAdmin     bool

	Personal []domain.Link
	Shared   []domain.Link

	// LoadFailed is set when the aggregation itself failed; the page then
	// shows a retryable error state instead of partial data.
	LoadFailed bool
}
