package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
)

const testSecret = "test-secret"

func testEmployee() *domain.Employee {
	return &domain.Employee{
		ID:    "c7b0f8a2-8c1d-4f4e-9a52-9f9a3a1b2c3d",
		Email: "a@x.com",
		Role:  domain.RoleStaff,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, 60)
	emp := testEmployee()

	token, exp, err := tm.GenerateToken(emp)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, claims.EmpID)
	assert.Equal(t, emp.Email, claims.Email)
	assert.Equal(t, emp.Role, claims.Role)
	assert.Equal(t, emp.ID, claims.Subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, 60)
	other := auth.NewTokenManager("another-secret", 60)

	token, _, err := other.GenerateToken(testEmployee())
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	// Sign a token with the right secret but an expiry in the past.
	claims := &auth.Claims{
		EmpID: "123",
		Email: "a@x.com",
		Role:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tm := auth.NewTokenManager(testSecret, 60)
	_, err = tm.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenWrongAlgorithm(t *testing.T) {
	claims := &auth.Claims{
		EmpID: "123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tm := auth.NewTokenManager(testSecret, 60)
	_, err = tm.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	tm := auth.NewTokenManager(testSecret, 60)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.ParseToken(token)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}
