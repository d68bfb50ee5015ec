package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newApp(enabled bool) *fiber.App {
	app := fiber.New()
	app.Get("/private", Protected(secret, enabled), func(c *fiber.Ctx) error {
		return c.SendString(GetSessionID(c).String())
	})
	return app
}

func TestProtected(t *testing.T) {
	app := newApp(true)
	sessionID := uuid.New()
	token, err := GenerateToken(secret, sessionID)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Token " + token, fiber.StatusUnauthorized},
		{"bad token", "Bearer nope", fiber.StatusUnauthorized},
		{"valid", "Bearer " + token, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestProtectedDisabled(t *testing.T) {
	resp, err := newApp(false).Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, uuid.New())
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.Error(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, claims.SessionID)
}
