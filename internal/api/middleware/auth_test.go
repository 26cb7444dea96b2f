package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
)

const testSecret = "test-secret"

func sign(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() Claims {
	return Claims{
		UserID:       "user-1",
		BusinessID:   "65f000000000000000000001",
		BusinessType: "restaurant",
		Role:         domain.RoleOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

// captures the principal seen by the downstream handler
func run(a *Authenticator, header string) (*httptest.ResponseRecorder, *domain.Principal) {
	var seen *domain.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = domain.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	a.Middleware(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthenticator_Middleware(t *testing.T) {
	a := NewAuthenticator(true, testSecret, "", logger.Nop{})

	t.Run("valid token sets principal", func(t *testing.T) {
		rec, p := run(a, "Bearer "+sign(t, testSecret, validClaims()))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, p)
		assert.Equal(t, "user-1", p.UserID)
		assert.Equal(t, "65f000000000000000000001", p.BusinessID)
		assert.Equal(t, domain.BusinessTypeRestaurant, p.BusinessType)
		assert.Equal(t, domain.RoleOwner, p.Role)
	})

	t.Run("no token is anonymous", func(t *testing.T) {
		rec, p := run(a, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, p)
	})

	t.Run("wrong secret", func(t *testing.T) {
		rec, p := run(a, "Bearer "+sign(t, "other", validClaims()))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, p)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		rec, _ := run(a, "Bearer "+sign(t, testSecret, claims))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec, _ := run(a, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthenticator_Disabled(t *testing.T) {
	a := NewAuthenticator(false, "", "", logger.Nop{})

	rec, p := run(a, "Bearer garbage")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, p)
	assert.Equal(t, domain.RoleAdmin, p.Role)
}

func TestAuthenticator_ParseDefaultsRoleAndSubject(t *testing.T) {
	a := NewAuthenticator(true, testSecret, "", logger.Nop{})

	claims := validClaims()
	claims.Role = ""
	claims.UserID = ""
	claims.Subject = "subject-42"

	p, err := a.Parse(sign(t, testSecret, claims))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, p.Role)
	assert.Equal(t, "subject-42", p.UserID)
}
