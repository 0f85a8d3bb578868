// Package middleware contains the HTTP-specific middleware chain.
package middleware

import (
	"strings"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/domain/entity"
	"couponhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyClaims    = "claims"
)

// AuthMiddleware provides middleware for bearer token authentication and
// coarse-grained gating. Fine-grained ownership decisions live in the
// usecase layer; this only establishes who is calling.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's identity
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_CREDENTIAL", "Authentication credentials were not provided")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// RequireKind rejects callers whose token does not carry the given account
// kind. Admins pass regardless of kind. Must run after Authenticate.
func (m *AuthMiddleware) RequireKind(kind entity.AccountKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeyClaims).(*service.Claims)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity information missing")
			}

			if claims.Kind != string(kind) && !claims.Admin {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(kind)+"' account")
			}

			return next(c)
		}
	}
}

// RequireAdmin rejects callers without the admin claim. The usecase layer
// re-checks the flag against storage, so a stale token cannot outlive a
// revocation by more than the access token lifetime.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(ContextKeyClaims).(*service.Claims)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity information missing")
		}

		if !claims.Admin {
			return response.Forbidden(c, "ADMIN_REQUIRED", "Superuser privilege required")
		}

		return next(c)
	}
}
