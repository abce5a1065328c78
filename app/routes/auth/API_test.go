package auth

import (
	"net/http/httptest"
	"testing"

	"csc-payments/app/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogoutApp() *fiber.App {
	config.Load()

	app := fiber.New()
	app.Post("/auth/logout", LogoutAPI)
	app.Post("/api/auth/logout", LogoutAPI)
	return app
}

func TestLogoutAPIReturnsJSON(t *testing.T) {
	app := newLogoutApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/logout", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestLogoutPageRedirectsToLogin(t *testing.T) {
	app := newLogoutApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/auth/logout", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}

func TestLogoutClearsSessionCookies(t *testing.T) {
	app := newLogoutApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/logout", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	names := map[string]bool{}
	for _, cookie := range resp.Cookies() {
		names[cookie.Name] = true
		assert.Empty(t, cookie.Value)
	}
	assert.True(t, names[StudentCookie])
	assert.True(t, names[AdminCookie])
}
