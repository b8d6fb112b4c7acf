package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/wassociates/portal/internal/domain"
	"github.com/wassociates/portal/internal/middleware"
	"github.com/wassociates/portal/internal/view"
	"github.com/wassociates/portal/internal/view/dto/auth"
	"github.com/wassociates/portal/web/src/templates/layouts"
	"github.com/wassociates/portal/web/src/templates/pages"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	userStore domain.UserRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userStore domain.UserRepository) *AuthHandler {
	return &AuthHandler{userStore: userStore}
}

// LoginGet renders the login page. A previously submitted email is retrieved
// from the flash session so a failed attempt keeps the form prefilled.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	data := auth.LoginData{Email: consumeFormEmail(c)}
	flashes := view.GetFlashData(c)

	return render(c, http.StatusOK, layouts.Base("Login", flashes, pages.Login(data)))
}

// LoginPost handles the form submission for logging in a user.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		view.SetFlashError(c, "Please provide a valid email and password.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user := &domain.User{Email: req.Email}
	token, err := h.userStore.SignIn(c.Request().Context(), user, req.Password)
	if err != nil {
		slog.Warn("Failed login attempt", "email", req.Email, "error", err)
		view.SetFlashError(c, "Failed to sign in. Please check your credentials.")
		stashFormEmail(c, req.Email)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	setAuthCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// RegisterGet renders the registration page.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	data := auth.RegisterData{Email: consumeFormEmail(c)}
	flashes := view.GetFlashData(c)

	return render(c, http.StatusOK, layouts.Base("Register", flashes, pages.Register(data)))
}

// RegisterPost handles the form submission for creating a new user.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Could not read the registration form.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Passwords must match and be at least 8 characters long.")
		stashFormEmail(c, req.Email)
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	newUser := &domain.User{Email: req.Email}
	token, err := h.userStore.SignUp(c.Request().Context(), newUser, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			view.SetFlashError(c, "A user with this email already exists.")
		} else {
			slog.Error("Error creating user", "error", err)
			view.SetFlashError(c, "Could not create your account.")
		}
		stashFormEmail(c, req.Email)
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	setAuthCookie(c, token)
	view.SetFlashSuccess(c, "Account created successfully!")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles logging the user out by clearing their session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	// Expiring the authentication cookie immediately is the standard way to
	// delete it.
	setAuthCookie(c, "")

	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// stashFormEmail preserves a submitted email across the redirect so the next
// render of the form can prefill it.
func stashFormEmail(c echo.Context, email string) {
	sess, _ := session.Get("flash-session", c)
	sess.AddFlash(email, "form_email")
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

// consumeFormEmail retrieves and clears a stashed form email.
func consumeFormEmail(c echo.Context) string {
	var email string
	if sess, err := session.Get("flash-session", c); err == nil {
		if flashes := sess.Flashes("form_email"); len(flashes) > 0 {
			if val, ok := flashes[0].(string); ok {
				email = val
			}
		}
		// Saving here clears the consumed flash.
		_ = sess.Save(c.Request(), c.Response())
	}
	return email
}

// setAuthCookie is a helper function to create and set the authentication cookie.
func setAuthCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = middleware.AuthCookieName
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		// Logging out: expire the cookie immediately.
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(24 * time.Hour)
	}
	// HttpOnly keeps the token away from client-side scripts; Secure kicks in
	// automatically once the request arrives over TLS.
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}
