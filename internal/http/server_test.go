package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/calmcp/credvault/internal/auth/service"
	"github.com/calmcp/credvault/internal/config"
	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
	credentialsHTTP "github.com/calmcp/credvault/internal/credentials/http"
)

// stubCredentialUseCase returns canned results for routing tests.
type stubCredentialUseCase struct {
	credential *credentialsDomain.Credential
	err        error
}

func (s *stubCredentialUseCase) Upsert(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) (*credentialsDomain.Credential, error) {
	return s.credential, s.err
}

func (s *stubCredentialUseCase) Get(
	ctx context.Context,
	provider, userID string,
) (*credentialsDomain.Credential, error) {
	return s.credential, s.err
}

func (s *stubCredentialUseCase) Delete(ctx context.Context, provider, userID string) error {
	return s.err
}

func newRoutedServer(t *testing.T, cfg *config.Config, useCase *stubCredentialUseCase) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := credentialsHTTP.NewCredentialHandler(useCase, logger)
	return NewServer(cfg, nil, logger, handler, authService.NewAPIKeyService(), nil)
}

func TestServerRoutes(t *testing.T) {
	cfg := &config.Config{
		ServerHost: "localhost",
		ServerPort: 8080,
		LogLevel:   "error",
	}

	t.Run("HealthEndpointUnauthenticated", func(t *testing.T) {
		server := newRoutedServer(t, cfg, &stubCredentialUseCase{})

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetCredentialRouted", func(t *testing.T) {
		useCase := &stubCredentialUseCase{err: credentialsDomain.ErrCredentialNotFound}
		server := newRoutedServer(t, cfg, useCase)

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/credentials/google/user-1", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UnknownRouteReturns404", func(t *testing.T) {
		server := newRoutedServer(t, cfg, &stubCredentialUseCase{})

		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServerRoutes_WithAPIKeyAuth(t *testing.T) {
	apiKeyService := authService.NewAPIKeyService()
	plainKey, hashedKey, err := apiKeyService.GenerateKey()
	require.NoError(t, err)

	cfg := &config.Config{
		ServerHost: "localhost",
		ServerPort: 8080,
		LogLevel:   "error",
		APIKeyHash: hashedKey,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	useCase := &stubCredentialUseCase{err: credentialsDomain.ErrCredentialNotFound}
	handler := credentialsHTTP.NewCredentialHandler(useCase, logger)
	server := NewServer(cfg, nil, logger, handler, apiKeyService, nil)

	t.Run("RejectsMissingKey", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/credentials/google/user-1", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AcceptsValidKey", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/credentials/google/user-1", nil)
		req.Header.Set("Authorization", "Bearer "+plainKey)
		server.GetHandler().ServeHTTP(w, req)

		// Authenticated request reaches the handler, which reports not found
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("HealthStaysUnauthenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
