package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) AddTenant(ctx context.Context, tx storage.Tx, tenant storage.Tenant) error {
	query := `
INSERT INTO tenant (id, status, tenant, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (id) DO UPDATE SET
	status = excluded.status,
	tenant = excluded.tenant,
	updated_at = excluded.updated_at
`
	_, err := tx.Exec(ctx, query, tenant.ID, tenant.Status, tenant, tenant.UpdatedAt)
	return err
}

func (s *_Storage) GetTenant(ctx context.Context, tx storage.Tx, id string) (storage.Tenant, error) {
	query := `SELECT tenant FROM tenant WHERE id = $1`

	var tenant storage.Tenant
	if err := tx.QueryRow(ctx, query, id).Scan(&tenant); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.Tenant{}, sql.ErrNoRows
		}
		return storage.Tenant{}, err
	}

	return tenant, nil
}

func (s *_Storage) AddAPIKey(ctx context.Context, tx storage.Tx, key storage.APIKeyRecord) error {
	query := `
INSERT INTO api_key (id, tenant_id, status, api_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (id) DO UPDATE SET
	status = excluded.status,
	api_key = excluded.api_key,
	updated_at = excluded.updated_at
`
	_, err := tx.Exec(ctx, query, key.ID, key.TenantID, key.Status, key, key.UpdatedAt)
	return err
}

func (s *_Storage) GetAPIKey(ctx context.Context, tx storage.Tx, id string) (storage.APIKeyRecord, storage.Tenant, error) {
	query := `
SELECT api_key.api_key, tenant.tenant
FROM api_key
JOIN tenant ON tenant.id = api_key.tenant_id
WHERE api_key.id = $1
`
	var key storage.APIKeyRecord
	var tenant storage.Tenant
	if err := tx.QueryRow(ctx, query, id).Scan(&key, &tenant); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.APIKeyRecord{}, storage.Tenant{}, sql.ErrNoRows
		}
		return storage.APIKeyRecord{}, storage.Tenant{}, err
	}

	return key, tenant, nil
}

func (s *_Storage) RevokeAPIKey(ctx context.Context, tx storage.Tx, ts int64, id string) error {
	query := `
UPDATE api_key
SET
	status = 'revoked',
	updated_at = $2,
	api_key = api_key || jsonb_build_object('status', 'revoked', 'updated_at', $2::BIGINT)
WHERE id = $1
`
	_, err := tx.Exec(ctx, query, id, ts)
	return err
}
