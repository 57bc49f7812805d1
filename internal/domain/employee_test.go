package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "manager", "staff"} {
		role, err := domain.ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, domain.Role(raw), role)
	}

	for _, raw := range []string{"", "Admin", "superuser", "ADMIN "} {
		_, err := domain.ParseRole(raw)
		assert.Error(t, err, "role %q should be rejected", raw)
	}
}
