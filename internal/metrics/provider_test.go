package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("credvault")
	require.NoError(t, err)
	require.NotNil(t, provider)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
}

func TestProvider_HandlerServesMetrics(t *testing.T) {
	provider, err := NewProvider("credvault")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	// Record something so the exposition output is non-trivial
	business, err := NewBusinessMetrics(provider.MeterProvider(), "credvault")
	require.NoError(t, err)
	business.RecordOperation(context.Background(), "credentials", "credential_get", "success")
	business.RecordDuration(context.Background(), "credentials", "credential_get", 25*time.Millisecond, "success")

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "credvault_operations_total")
	assert.Contains(t, string(body), "credvault_operation_duration_seconds")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	metrics := NewNoOpBusinessMetrics()
	assert.NotPanics(t, func() {
		metrics.RecordOperation(context.Background(), "credentials", "credential_get", "success")
		metrics.RecordDuration(context.Background(), "credentials", "credential_get", time.Second, "error")
	})
}
