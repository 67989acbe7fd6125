package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/codecoach-dev/codecoach-api/internal/utils"
)

// JWTProtected returns a middleware that rejects requests without a valid
// bearer token. Used only where authentication is mandatory (learning plans).
func JWTProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := verifyBearer(c, secret)
		if !ok {
			return utils.Fail(c, fiber.StatusUnauthorized, "authentication required", nil)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// JWTOptional returns a middleware that attaches the caller identity when a
// valid bearer token is present and treats every failure as anonymous. The
// request always proceeds.
func JWTOptional(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := verifyBearer(c, secret); ok {
			c.Locals("user_id", userID)
		}
		return c.Next()
	}
}

func verifyBearer(c *fiber.Ctx, secret string) (uint, bool) {
	if secret == "" {
		return 0, false
	}

	authorization := c.Get("Authorization")
	const bearer = "bearer "
	if len(authorization) <= len(bearer) || !strings.EqualFold(authorization[:len(bearer)], bearer) {
		return 0, false
	}

	tokenString := strings.TrimSpace(authorization[len(bearer):])
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	for _, key := range []string{"sub", "user_id", "id"} {
		if value, exists := claims[key]; exists {
			if id, err := normalizeUserID(value); err == nil {
				return id, true
			}
		}
	}

	return 0, false
}

func normalizeUserID(value interface{}) (uint, error) {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("invalid subject")
		}
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return uint(parsed), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("invalid subject")
		}
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported subject type")
	}
}
