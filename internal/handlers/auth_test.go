package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wassociates/portal/internal/domain"
	"github.com/wassociates/portal/internal/handlers"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// MockUserStore provides a mock implementation of the UserRepository for testing.
type MockUserStore struct {
	signInErr error
	signUpErr error
}

func (m *MockUserStore) SignUp(ctx context.Context, user *domain.User, password string) (string, error) {
	if m.signUpErr != nil {
		return "", m.signUpErr
	}
	return "test-token", nil
}

func (m *MockUserStore) SignIn(ctx context.Context, user *domain.User, password string) (string, error) {
	if m.signInErr != nil {
		return "", m.signInErr
	}
	return "test-token", nil
}

func (m *MockUserStore) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return &domain.User{Email: "test@example.com"}, nil
}

func setupAuthTest(store *MockUserStore) (*echo.Echo, *handlers.AuthHandler) {
	e := echo.New()
	e.Validator = handlers.NewValidator()

	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))
	e.Use(session.Middleware(cookieStore))

	return e, handlers.NewAuthHandler(store)
}

// assertFlashMessage is a test helper to check for a specific flash message in the session.
func assertFlashMessage(t *testing.T, req *http.Request, key, expectedMessage string) {
	t.Helper()

	// The flash was written during the request; decode it back off the
	// request's cookie jar with an identically keyed store.
	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))
	sess, _ := cookieStore.Get(req, "flash-session")

	flashes := sess.Flashes(key)
	assert.NotEmpty(t, flashes, "expected flash message but found none for key: %s", key)
	assert.Equal(t, expectedMessage, flashes[0])
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginPost(t *testing.T) {
	t.Run("sets auth cookie and redirects to dashboard on success", func(t *testing.T) {
		e, authHandler := setupAuthTest(&MockUserStore{})
		e.POST("/login", authHandler.LoginPost)

		form := url.Values{}
		form.Set("email", "test@example.com")
		form.Set("password", "password123")
		rec := postForm(e, "/login", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		var authCookie *http.Cookie
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "auth_token" {
				authCookie = cookie
			}
		}
		require.NotNil(t, authCookie, "expected an auth_token cookie")
		assert.Equal(t, "test-token", authCookie.Value)
		assert.True(t, authCookie.HttpOnly)
	})

	t.Run("sets error flash on bad credentials", func(t *testing.T) {
		e, authHandler := setupAuthTest(&MockUserStore{signInErr: domain.ErrInvalidCredentials})
		e.POST("/login", authHandler.LoginPost)

		form := url.Values{}
		form.Set("email", "test@example.com")
		form.Set("password", "wrong")
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assertFlashMessage(t, req, "error", "Failed to sign in. Please check your credentials.")
	})

	t.Run("rejects an invalid email without hitting the store", func(t *testing.T) {
		e, authHandler := setupAuthTest(&MockUserStore{})
		e.POST("/login", authHandler.LoginPost)

		form := url.Values{}
		form.Set("email", "not-an-email")
		form.Set("password", "password123")
		rec := postForm(e, "/login", form)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestRegisterPost(t *testing.T) {
	t.Run("sets success flash on successful registration", func(t *testing.T) {
		e, authHandler := setupAuthTest(&MockUserStore{})
		e.POST("/register", authHandler.RegisterPost)

		form := url.Values{}
		form.Set("email", "test@example.com")
		form.Set("password", "password123")
		form.Set("password_confirm", "password123")
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		assertFlashMessage(t, req, "success", "Account created successfully!")
	})

	t.Run("sets error flash on password mismatch", func(t *testing.T) {
		e, authHandler := setupAuthTest(&MockUserStore{})
		e.POST("/register", authHandler.RegisterPost)

		form := url.Values{}
		form.Set("email", "test2@example.com")
		form.Set("password", "password123")
		form.Set("password_confirm", "wrongpassword")
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/register", rec.Header().Get("Location"))
		assertFlashMessage(t, req, "error", "Passwords must match and be at least 8 characters long.")
	})

	t.Run("sets error flash when the email is taken", func(t *testing.T) {
		e, authHandler := setupAuthTest(&MockUserStore{signUpErr: domain.ErrUserAlreadyExists})
		e.POST("/register", authHandler.RegisterPost)

		form := url.Values{}
		form.Set("email", "taken@example.com")
		form.Set("password", "password123")
		form.Set("password_confirm", "password123")
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assertFlashMessage(t, req, "error", "A user with this email already exists.")
	})
}

func TestLogout(t *testing.T) {
	e, authHandler := setupAuthTest(&MockUserStore{})
	e.GET("/logout", authHandler.Logout)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	var authCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "auth_token" {
			authCookie = cookie
		}
	}
	require.NotNil(t, authCookie)
	assert.Empty(t, authCookie.Value)
	assert.Negative(t, authCookie.MaxAge)
}
