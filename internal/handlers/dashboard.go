package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wassociates/portal/internal/domain"
	"github.com/wassociates/portal/internal/middleware"
	"github.com/wassociates/portal/internal/portal"
	"github.com/wassociates/portal/internal/view"
	"github.com/wassociates/portal/internal/view/dto/dashboard"
	"github.com/wassociates/portal/web/src/templates/layouts"
	"github.com/wassociates/portal/web/src/templates/pages"
)

// DashboardHandler handles requests for the member dashboard.
type DashboardHandler struct {
	portal portal.Portal
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(p portal.Portal) *DashboardHandler {
	return &DashboardHandler{portal: p}
}

// DashboardGet shows the member's dashboard page.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	// The Auth middleware has already run and placed the user in the context.
	user := c.Get(middleware.UserContextKey).(*domain.User)

	data := h.resolve(c, user.Email)
	flashes := view.GetFlashData(c)

	return render(c, http.StatusOK, layouts.Base("Dashboard", flashes, pages.Dashboard(data)))
}

// DashboardLinksGet serves the links section alone, for the htmx refresh.
func (h *DashboardHandler) DashboardLinksGet(c echo.Context) error {
	user := c.Get(middleware.UserContextKey).(*domain.User)

	data := h.resolve(c, user.Email)
	return render(c, http.StatusOK, pages.LinksSection(data))
}

// resolve gathers everything the dashboard shows. The admin flag, the profile
// and the links resolve independently: a missing profile just falls back to
// the session email, while a links failure flips the page into its retryable
// error state rather than showing partial data.
func (h *DashboardHandler) resolve(c echo.Context, email string) dashboard.Data {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	data := dashboard.Data{
		Email:       email,
		DisplayName: email,
		IsAdmin:     h.portal.IsUserAdmin(ctx, email),
	}

	profile, err := h.portal.GetUserProfile(ctx, email)
	if err != nil {
		logger.Error("failed to resolve member profile", "email", email, "error", err)
	} else if profile != nil && profile.DisplayName != "" {
		data.DisplayName = profile.DisplayName
	}

	links, err := h.portal.GetUserLinks(ctx, email)
	if err != nil {
		logger.Error("failed to aggregate member links", "email", email, "error", err)
		data.LoadFailed = true
		return data
	}

	for _, link := range links {
		if link.IsShared {
			data.Shared = append(data.Shared, link)
		} else {
			data.Personal = append(data.Personal, link)
		}
	}
	return data
}
