package middleware

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/pkg/jwt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(jwtService jwt.JWTService) *fiber.App {
	m := NewMiddleware()
	app := fiber.New()
	app.Get("/me", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(actor.UserID + ":" + string(actor.Role))
	})
	app.Get("/admin", m.AuthMiddleware(jwtService), m.AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTServiceWithConfig("secret", time.Hour)
	app := newTestApp(jwtService)

	userToken, err := jwtService.GenerateTokenUser("u-1", domain.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "/me", ""))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "/me", userToken))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "/me", "Bearer nope"))
	assert.Equal(t, fiber.StatusOK, request(t, app, "/me", "Bearer "+userToken))
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.NewJWTServiceWithConfig("secret", time.Hour)
	app := newTestApp(jwtService)

	userToken, err := jwtService.GenerateTokenUser("u-1", domain.RoleUser)
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateTokenUser("a-1", domain.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, request(t, app, "/admin", "Bearer "+userToken))
	assert.Equal(t, fiber.StatusNoContent, request(t, app, "/admin", "Bearer "+adminToken))
}
