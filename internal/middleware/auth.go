// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"strings"

	"postify/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// TokenRevokedChecker reports whether a token ID has been revoked (logout).
// Wired to the cache-backed denylist; nil-safe when no checker is installed.
type TokenRevokedChecker func(c *fiber.Ctx, jti string) bool

var revokedChecker TokenRevokedChecker

// SetTokenRevokedChecker installs the revocation check used by AuthRequired.
func SetTokenRevokedChecker(fn TokenRevokedChecker) {
	revokedChecker = fn
}

// AuthRequired is a middleware that enforces authentication for protected routes.
//
// The "sub" claim carries the session user's email; it is stored in
// c.Locals("userEmail") for handlers to resolve their session identity.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid authorization header format",
		})
	}

	tokenString := parts[1]

	// Parse and validate token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	// Extract claims
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token claims",
		})
	}

	// Extract user email from "sub" claim (subject claim per RFC 7519)
	subClaim, ok := claims["sub"]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token structure - missing subject",
		})
	}

	email, ok := subClaim.(string)
	if !ok || email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token subject type",
		})
	}

	// Reject tokens revoked by logout; stash jti/exp so the logout handler
	// can denylist the presented token for its remaining lifetime.
	if jti, ok := claims["jti"].(string); ok {
		if revokedChecker != nil && revokedChecker(c, jti) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token has been revoked",
			})
		}
		c.Locals("tokenJTI", jti)
	}
	if exp, ok := claims["exp"].(float64); ok {
		c.Locals("tokenExp", int64(exp))
	}

	// Store session identity in context
	c.Locals("userEmail", email)

	return c.Next()
}
