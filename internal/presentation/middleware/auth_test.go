package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiblebooks/internal/domain/entity"
	"audiblebooks/internal/presentation"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID, name, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func invoke(t *testing.T, authHeader string, roles ...string) (*httptest.ResponseRecorder, entity.Identity, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(presentation.AuthKey, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ident entity.Identity
	var reached bool
	handler := Auth(testSecret, roles...)(func(c echo.Context) error {
		ident = presentation.IdentityFrom(c)
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, ident, reached
}

func TestAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, "u1", "Jess", entity.RoleAuthor)

	rec, ident, reached := invoke(t, presentation.BearerPrefix+token, entity.RoleAuthor)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, "u1", ident.ID)
	assert.Equal(t, "Jess", ident.Name)
	assert.Equal(t, entity.RoleAuthor, ident.Role)
}

func TestAuthMissingHeader(t *testing.T) {
	rec, _, reached := invoke(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMissingBearerPrefix(t *testing.T) {
	token := signToken(t, testSecret, "u1", "Jess", entity.RoleUser)

	rec, _, reached := invoke(t, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", "u1", "Jess", entity.RoleUser)

	rec, _, reached := invoke(t, presentation.BearerPrefix+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "u1",
		Role:   entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _, reached := invoke(t, presentation.BearerPrefix+signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthEmptySubject(t *testing.T) {
	token := signToken(t, testSecret, "", "Jess", entity.RoleUser)

	rec, _, reached := invoke(t, presentation.BearerPrefix+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthRoleDenied(t *testing.T) {
	token := signToken(t, testSecret, "u1", "Jess", entity.RoleUser)

	rec, _, reached := invoke(t, presentation.BearerPrefix+token, entity.RoleAuthor)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestAuthAnyRoleWhenUnrestricted(t *testing.T) {
	token := signToken(t, testSecret, "u1", "Jess", "anything")

	rec, _, reached := invoke(t, presentation.BearerPrefix+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}
