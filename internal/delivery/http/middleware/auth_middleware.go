package middleware

import (
	"errors"
	"strings"

	"skillbarter/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CtxUserIDKey holds the resolved caller id (uuid.UUID) in request locals.
const CtxUserIDKey = "user_id"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Require rejects requests without a valid access token.
func (m *AuthMiddleware) Require() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateAccessToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		return c.Next()
	}
}

// Optional resolves the caller when a valid token is present and continues
// anonymously otherwise. Listing reads answer empty instead of 401 for
// unauthenticated callers, so they mount behind this variant.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
			if claims, err := m.jwt.ValidateAccessToken(token); err == nil {
				c.Locals(CtxUserIDKey, claims.UserID)
			}
		}
		return c.Next()
	}
}

// CallerID reads the resolved identity; uuid.Nil means unauthenticated.
func CallerID(c fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(CtxUserIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
