package repository

import (
	"context"
	"database/sql"

	"github.com/calmcp/credvault/internal/database"
	credentialsDomain "github.com/calmcp/credvault/internal/credentials/domain"
	apperrors "github.com/calmcp/credvault/internal/errors"
)

// MySQLCredentialRepository implements credential persistence for MySQL databases.
type MySQLCredentialRepository struct {
	db *sql.DB
}

// NewMySQLCredentialRepository creates a credential repository backed by MySQL.
func NewMySQLCredentialRepository(db *sql.DB) *MySQLCredentialRepository {
	return &MySQLCredentialRepository{db: db}
}

// Upsert inserts a credential or replaces the stored token envelopes for an
// existing provider/user pair.
func (m *MySQLCredentialRepository) Upsert(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO credentials
			  (id, provider, user_id, access_token, refresh_token, token_type, scope, expires_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  access_token = VALUES(access_token),
			  refresh_token = VALUES(refresh_token),
			  token_type = VALUES(token_type),
			  scope = VALUES(scope),
			  expires_at = VALUES(expires_at),
			  updated_at = VALUES(updated_at)`

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
func (m *MySQLCredentialRepository) GetByProviderAndUserID(
	ctx context.Context,
	provider, userID string,
) (*credentialsDomain.Credential, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, provider, user_id, access_token, refresh_token, token_type, scope, expires_at, created_at, updated_at
			  FROM credentials
			  WHERE provider = ? AND user_id = ?`

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
func (m *MySQLCredentialRepository) Delete(
	ctx context.Context,
	provider, userID string,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM credentials WHERE provider = ? AND user_id = ?`

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
