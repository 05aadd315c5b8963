package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"logidocs/internal/config"
)

const (
	// UserLocalKey holds the "user" claim of a verified token.
	UserLocalKey = "user"
	// ClaimsLocalKey holds the full jwt.MapClaims of a verified token.
	ClaimsLocalKey = "jwt_claims"
)

var (
	errMissingToken = fiber.NewError(fiber.StatusUnauthorized, "authorization token is missing")
	errTokenFormat  = fiber.NewError(fiber.StatusUnauthorized, "authorization header must be 'Bearer <token>'")
	errInvalidToken = fiber.NewError(fiber.StatusUnauthorized, "token is invalid or expired")
)

// Auth verifies an HS256 bearer token on every request.
// With cfg.Disabled set the middleware passes requests through untouched.
// Failures are returned as 401 fiber errors so the global error handler renders them.
func Auth(cfg config.AuthConfig) fiber.Handler {
	if cfg.Disabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	secret := []byte(cfg.JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{
		jwt.SigningMethodHS256.Alg(),
		jwt.SigningMethodHS384.Alg(),
		jwt.SigningMethodHS512.Alg(),
	}))

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return errMissingToken
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return errTokenFormat
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return fiber.NewError(fiber.StatusUnauthorized, "token has expired")
			}
			return errInvalidToken
		}

		c.Locals(ClaimsLocalKey, claims)
		if user, ok := claims["user"]; ok {
			c.Locals(UserLocalKey, user)
		}

		return c.Next()
	}
}
