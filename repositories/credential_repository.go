package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/liamesika/adconnect/models"
	"github.com/liamesika/adconnect/secretbox"
)

// CredentialRepository defines persistence of per-user-per-platform token
// bundles. Tokens are encrypted before they reach a row and decrypted on the
// way out; Put is an atomic upsert, so a Get never observes a partially
// written record.
type CredentialRepository interface {
	// Get returns the stored credential for (userID, platform), or nil when
	// none exists.
	Get(ctx context.Context, userID string, platform models.Platform) (*models.StoredCredential, error)

	// Put computes the absolute expiry from the bundle's expires_in and
	// overwrites any existing record for the key.
	Put(ctx context.Context, userID string, bundle *models.TokenBundle) error

	// Delete removes the credential for (userID, platform). Deleting a
	// missing record is not an error.
	Delete(ctx context.Context, userID string, platform models.Platform) error
}

// credentialRepository implements CredentialRepository on sqlite
type credentialRepository struct {
	db  *sql.DB
	box *secretbox.SecretBox
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *sql.DB, box *secretbox.SecretBox) CredentialRepository {
	return &credentialRepository{db: db, box: box}
}

// Get retrieves and decrypts the credential for (userID, platform)
func (r *credentialRepository) Get(ctx context.Context, userID string, platform models.Platform) (*models.StoredCredential, error) {
	query := `
		SELECT user_id, platform, access_token, refresh_token, token_type, scope, expires_at, updated_at
		FROM credentials
		WHERE user_id = ? AND platform = ?
	`

	var cred models.StoredCredential
	var encryptedAccess string
	var encryptedRefresh sql.NullString

	err := r.db.QueryRowContext(ctx, query, userID, string(platform)).Scan(
		&cred.UserID,
		&cred.Platform,
		&encryptedAccess,
		&encryptedRefresh,
		&cred.TokenType,
		&cred.Scope,
		&cred.ExpiresAt,
		&cred.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	cred.AccessToken, err = r.box.Decrypt(encryptedAccess)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	if encryptedRefresh.Valid && encryptedRefresh.String != "" {
		cred.RefreshToken, err = r.box.Decrypt(encryptedRefresh.String)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
		}
	}

	return &cred, nil
}

// Put encrypts the bundle and upserts it for (userID, bundle.Platform)
func (r *credentialRepository) Put(ctx context.Context, userID string, bundle *models.TokenBundle) error {
	encryptedAccess, err := r.box.Encrypt(bundle.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	var encryptedRefresh sql.NullString
	if bundle.RefreshToken != "" {
		enc, err := r.box.Encrypt(bundle.RefreshToken)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		encryptedRefresh = sql.NullString{String: enc, Valid: true}
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(bundle.ExpiresIn) * time.Second)

	query := `
		INSERT INTO credentials (user_id, platform, access_token, refresh_token, token_type, scope, expires_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, platform) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			scope = excluded.scope,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		userID,
		string(bundle.Platform),
		encryptedAccess,
		encryptedRefresh,
		bundle.TokenType,
		bundle.Scope,
		expiresAt,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

// Delete removes the credential for (userID, platform)
func (r *credentialRepository) Delete(ctx context.Context, userID string, platform models.Platform) error {
	query := `DELETE FROM credentials WHERE user_id = ? AND platform = ?`

	if _, err := r.db.ExecContext(ctx, query, userID, string(platform)); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}
