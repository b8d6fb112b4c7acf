package domain

// MemberProfile is the portal-facing view of a member document. Profiles are
// written by the administrative tooling and read-only everywhere else.
type MemberProfile struct {
	DisplayName string            `json:"displayName"`
	Email       string            `json:"email"`
	Links       map[string]string `json:"links"`
}

// Link is a single aggregated resource link, ready for display. Personal links
// use their title as the id; shared links carry a prefix so ids never collide
// within one aggregated result, even when titles do.
type Link struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
	IsShared bool   `json:"isShared"`
}
