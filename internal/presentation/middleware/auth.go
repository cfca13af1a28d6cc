package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/presentation"
)

type Config struct {
	Secret string
}

// Claims is the token payload issued by the identity collaborator. This
// service only verifies and reads it.
type Claims struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies the bearer token and stores the caller identity on the
// context. When roles are given, the token's role must be one of them.
func Auth(secret string, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if err := validateAuthHeader(authHeader); err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
			}

			claims, err := parseToken(authHeader, secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
			}

			if !roleAllowed(claims.Role, roles) {
				return ctx.JSON(http.StatusForbidden, echo.Map{
					"error": fmt.Sprintf("role %q may not perform this action", claims.Role),
				})
			}

			ctx.Set(presentation.IdentityKey, entity.Identity{
				ID:   claims.UserID,
				Name: claims.Name,
				Role: claims.Role,
			})

			return next(ctx)
		}
	}
}

func validateAuthHeader(authHeader string) error {
	if authHeader == "" {
		return fmt.Errorf("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, presentation.BearerPrefix) {
		return fmt.Errorf("missing Bearer header prefix")
	}

	return nil
}

func parseToken(authHeader, secret string) (*Claims, error) {
	raw := strings.TrimPrefix(authHeader, presentation.BearerPrefix)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %s", err.Error())
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no subject identity")
	}

	return claims, nil
}

func roleAllowed(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if role == r {
			return true
		}
	}

	return false
}
