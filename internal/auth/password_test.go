package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/employee-service/internal/auth"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "secret1"},
		{name: "long password", password: "a-much-longer-password-with-symbols-!@#$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := auth.HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, auth.ComparePassword(hash, tt.password))
		})
	}
}

func TestComparePasswordMismatch(t *testing.T) {
	hash, err := auth.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Error(t, auth.ComparePassword(hash, "wrong"))
	assert.Error(t, auth.ComparePassword(hash, ""))
	assert.Error(t, auth.ComparePassword("not-a-digest", "secret1"))
}

func TestHashPasswordInvalidCost(t *testing.T) {
	_, err := auth.HashPassword("secret1", bcrypt.MaxCost+1)
	assert.Error(t, err)
}
