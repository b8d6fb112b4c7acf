package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wassociates/portal/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", s.homeHandler.HomeGet)

	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)

	s.E.GET("/register", s.authHandler.RegisterGet)
	s.E.POST("/register", s.authHandler.RegisterPost, rateLimiter)

	s.E.GET("/logout", s.authHandler.Logout)

	// The dashboard is the only authenticated surface.
	auth := middleware.Auth(s.userStore)
	s.E.GET("/dashboard", s.dashboardHandler.DashboardGet, auth)
	s.E.GET("/dashboard/links", s.dashboardHandler.DashboardLinksGet, auth)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
