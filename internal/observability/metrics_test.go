package observability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/employee-service/internal/observability"
)

func TestMetricsCounters(t *testing.T) {
	m := observability.NewMetrics()

	m.RecordRequest("/api/employees/login", "POST", 200, 10*time.Millisecond)
	m.RecordError("/api/employees/login", "POST", "UNAUTHORIZED")
	m.RecordError("/api/employees/1", "DELETE", "FORBIDDEN")
	m.RecordError("/api/employees/signup", "POST", "CONFLICT")

	assert.Equal(t, int64(2), m.AuthFailures())
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *observability.Metrics

	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "UNAUTHORIZED")
	assert.Zero(t, m.AuthFailures())
}
