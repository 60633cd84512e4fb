package usecase

import (
	"context"
	"time"

	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
	"github.com/calmcp/credvault/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics recording.
func NewCredentialUseCaseWithMetrics(useCase CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Upsert records metrics for credential store/replace operations.
func (c *credentialUseCaseWithMetrics) Upsert(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) (*credentialsDomain.Credential, error) {
	start := time.Now()
	stored, err := c.next.Upsert(ctx, credential)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credentials", "credential_upsert", status)
	c.metrics.RecordDuration(ctx, "credentials", "credential_upsert", time.Since(start), status)

	return stored, err
}

// Get records metrics for credential retrieval operations.
func (c *credentialUseCaseWithMetrics) Get(
	ctx context.Context,
	provider, userID string,
) (*credentialsDomain.Credential, error) {
	start := time.Now()
	credential, err := c.next.Get(ctx, provider, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credentials", "credential_get", status)
	c.metrics.RecordDuration(ctx, "credentials", "credential_get", time.Since(start), status)

	return credential, err
}

// Delete records metrics for credential deletion operations.
func (c *credentialUseCaseWithMetrics) Delete(ctx context.Context, provider, userID string) error {
	start := time.Now()
	err := c.next.Delete(ctx, provider, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credentials", "credential_delete", status)
	c.metrics.RecordDuration(ctx, "credentials", "credential_delete", time.Since(start), status)

	return err
}
