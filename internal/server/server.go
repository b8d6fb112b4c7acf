package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/surrealdb/surrealdb.go"
	"github.com/wassociates/portal/internal/config"
	"github.com/wassociates/portal/internal/database"
	"github.com/wassociates/portal/internal/domain"
	"github.com/wassociates/portal/internal/handlers"
	"github.com/wassociates/portal/internal/logging"
	"github.com/wassociates/portal/internal/middleware"
	"github.com/wassociates/portal/internal/portal"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *surrealdb.DB
	Cfg *config.Config

	userStore        domain.UserRepository
	portalService    *portal.Service
	homeHandler      *handlers.HomeHandler
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
}

// New creates a new Server instance.
func New() *Server {
	logging.New() // Initialize the structured logger
	cfg := config.New()

	db, err := database.NewDB(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	userStore := database.NewSurrealUserStore(db, cfg.DBNs, cfg.DBDb)
	docStore := database.NewSurrealDocumentStore(db)
	portalService := portal.NewService(docStore, cfg.SharedAccount)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Logger)

	// Cookie-backed session store for flash messages.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:                e,
		DB:               db,
		Cfg:              cfg,
		userStore:        userStore,
		portalService:    portalService,
		homeHandler:      handlers.NewHomeHandler(),
		authHandler:      handlers.NewAuthHandler(userStore),
		dashboardHandler: handlers.NewDashboardHandler(portalService),
	}
}

// UserStore is a getter for the server's user store, useful for testing.
func (s *Server) UserStore() domain.UserRepository {
	return s.userStore
}

// PortalService is a getter for the aggregation core, useful for testing.
func (s *Server) PortalService() *portal.Service {
	return s.portalService
}
