// Package repository implements credential persistence for PostgreSQL and MySQL.
// Repositories store only encrypted token envelopes; plaintext never reaches this layer.
package repository

import (
	"context"
	"database/sql"

	"github.com/calmcp/credvault/internal/database"
	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
	apperrors "github.com/calmcp/credvault/internal/errors"
)

// PostgreSQLCredentialRepository implements credential persistence for PostgreSQL databases.
type PostgreSQLCredentialRepository struct {
	db *sql.DB
}

// NewPostgreSQLCredentialRepository creates a credential repository backed by PostgreSQL.
func NewPostgreSQLCredentialRepository(db *sql.DB) *PostgreSQLCredentialRepository {
	return &PostgreSQLCredentialRepository{db: db}
}

// Upsert inserts a credential or replaces the stored token envelopes for an
// existing provider/user pair.
func (p *PostgreSQLCredentialRepository) Upsert(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO credentials
			  (id, provider, user_id, access_token, refresh_token, token_type, scope, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (provider, user_id) DO UPDATE SET
			  access_token = EXCLUDED.access_token,
			  refresh_token = EXCLUDED.refresh_token,
			  token_type = EXCLUDED.token_type,
			  scope = EXCLUDED.scope,
			  expires_at = EXCLUDED.expires_at,
			  updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(
		ctx,
		query,
		credential.ID,
		credential.Provider,
		credential.UserID,
		credential.AccessTokenEnvelope,
		credential.RefreshTokenEnvelope,
		credential.TokenType,
		credential.Scope,
		credential.ExpiresAt,
		credential.CreatedAt,
		credential.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert credential")
	}
	return nil
}

// GetByProviderAndUserID retrieves the stored credential for a provider/user pair.
func (p *PostgreSQLCredentialRepository) GetByProviderAndUserID(
	ctx context.Context,
	provider, userID string,
) (*credentialsDomain.Credential, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, provider, user_id, access_token, refresh_token, token_type, scope, expires_at, created_at, updated_at
			  FROM credentials
			  WHERE provider = $1 AND user_id = $2`

	var credential credentialsDomain.Credential
	err := querier.QueryRowContext(ctx, query, provider, userID).Scan(
		&credential.ID,
		&credential.Provider,
		&credential.UserID,
		&credential.AccessTokenEnvelope,
		&credential.RefreshTokenEnvelope,
		&credential.TokenType,
		&credential.Scope,
		&credential.ExpiresAt,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, credentialsDomain.ErrCredentialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credential")
	}

	return &credential, nil
}

// Delete removes the stored credential for a provider/user pair.
// Returns ErrCredentialNotFound if nothing was stored.
func (p *PostgreSQLCredentialRepository) Delete(
	ctx context.Context,
	provider, userID string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM credentials WHERE provider = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, provider, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete credential")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read delete result")
	}
	if rows == 0 {
		return credentialsDomain.ErrCredentialNotFound
	}

	return nil
}
