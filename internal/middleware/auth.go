package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wassociates/portal/internal/domain"
)

// UserContextKey is where the authenticated user is stored on the Echo context.
const UserContextKey = "user"

// AuthCookieName is the cookie carrying the session token.
const AuthCookieName = "auth_token"

// Auth creates a middleware that protects routes that require authentication.
// Anonymous or invalid sessions are redirected to the login page; handlers
// behind it can rely on the user being present in the context.
func Auth(store domain.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			user, err := store.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil || user == nil {
				// Clear the invalid cookie before bouncing to login.
				c.SetCookie(&http.Cookie{
					Name:   AuthCookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
