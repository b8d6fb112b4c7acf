package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wassociates/portal/internal/middleware"
)

// HomeHandler handles requests for the root path.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet sends members with a session cookie to the dashboard and everyone
// else to the login page. The cookie is validated by the Auth middleware on
// the dashboard route itself.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.AuthCookieName); err == nil && cookie.Value != "" {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
