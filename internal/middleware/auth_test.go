package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"postify/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authTestSecret = "test-secret-key-12345678901234567890123456789012"

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(authTestSecret))
	require.NoError(t, err)
	return s
}

func TestAuthRequired(t *testing.T) {
	app := fiber.New()
	InitMiddleware(&config.Config{JWTSecret: authTestSecret})
	SetTokenRevokedChecker(nil)

	app.Get("/test", AuthRequired, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"email": c.Locals("userEmail")})
	})

	generateToken := func(email string, exp time.Duration) string {
		return signTestToken(t, jwt.MapClaims{
			"sub": email,
			"exp": time.Now().Add(exp).Unix(),
		})
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedEmail  string
	}{
		{
			name:           "Happy Path",
			authHeader:     "Bearer " + generateToken("alice@example.com", time.Hour),
			expectedStatus: http.StatusOK,
			expectedEmail:  "alice@example.com",
		},
		{
			name:           "Missing Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid Format",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed Token",
			authHeader:     "Bearer malformed.token.here",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + generateToken("alice@example.com", -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Missing Subject",
			authHeader: "Bearer " + signTestToken(t, jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt // capture range variable
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedEmail != "" {
				var body map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.expectedEmail, body["email"])
			}
		})
	}
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	app := fiber.New()
	InitMiddleware(&config.Config{JWTSecret: authTestSecret})

	revoked := map[string]bool{"revoked-jti": true}
	SetTokenRevokedChecker(func(c *fiber.Ctx, jti string) bool {
		return revoked[jti]
	})
	t.Cleanup(func() { SetTokenRevokedChecker(nil) })

	app.Get("/test", AuthRequired, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	makeToken := func(jti string) string {
		return signTestToken(t, jwt.MapClaims{
			"sub": "alice@example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
			"jti": jti,
		})
	}

	t.Run("revoked token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken("revoked-jti"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("live token accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken("live-jti"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
