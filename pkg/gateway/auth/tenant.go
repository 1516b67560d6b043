// Package auth manages tenants and the API keys used to call the management
// API.
package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/util"
	"github.com/samber/lo"
)

type TenantStatus string

const (
	TenantStatusActive   = TenantStatus("active")
	TenantStatusInactive = TenantStatus("inactive")
)

type CreateTenantRequest struct {
	Requester string `json:"requester"`
	Name      string `json:"name"`
}

type CreateAPIKeyRequest struct {
	Requester string   `json:"requester"`
	TenantID  string   `json:"tenant_id"`
	Scopes    []string `json:"scopes"`
}

type RevokeAPIKeyRequest struct {
	Requester string `json:"requester"`
	TenantID  string `json:"tenant_id"`
	ID        string `json:"id"`
}

// TenantManager provisions tenants and their management API keys. The raw
// APIKeyString is returned exactly once at creation.
type TenantManager interface {
	CreateTenant(ctx context.Context, ts int64, req CreateTenantRequest) (storage.Tenant, error)
	GetTenant(ctx context.Context, id string) (storage.Tenant, error)
	CreateAPIKey(ctx context.Context, ts int64, req CreateAPIKeyRequest) (storage.APIKeyRecord, APIKeyString, error)
	RevokeAPIKey(ctx context.Context, ts int64, req RevokeAPIKeyRequest) error
}

// APIKeyAuthenticator resolves a presented APIKeyString into the key record
// and its owning tenant.
type APIKeyAuthenticator interface {
	Authenticate(ctx context.Context, ks APIKeyString) (storage.APIKeyRecord, storage.Tenant, error)
}

type _TenantManager struct {
	storage storage.AuthStorage
}

func NewTenantManager(authStorage storage.AuthStorage) TenantManager {
	return &_TenantManager{storage: authStorage}
}

// NewAPIKeyAuthenticator returns the authenticator backed by the same
// storage the manager writes to.
func NewAPIKeyAuthenticator(authStorage storage.AuthStorage) APIKeyAuthenticator {
	return &_TenantManager{storage: authStorage}
}

func (m *_TenantManager) CreateTenant(ctx context.Context, ts int64, req CreateTenantRequest) (storage.Tenant, error) {
	if err := ValidateCreateTenantRequest(req); err != nil {
		return storage.Tenant{}, err
	}

	tenant := storage.Tenant{
		ID:        util.NewUUID(),
		Name:      req.Name,
		Status:    string(TenantStatusActive),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return storage.Tenant{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := m.storage.AddTenant(ctx, tx, tenant); err != nil {
		return storage.Tenant{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return storage.Tenant{}, err
	}

	return tenant, nil
}

func (m *_TenantManager) GetTenant(ctx context.Context, id string) (storage.Tenant, error) {
	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.Tenant{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tenant, err := m.storage.GetTenant(ctx, tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Tenant{}, ErrTenantNotFound
	}
	if err != nil {
		return storage.Tenant{}, err
	}

	return tenant, nil
}

func (m *_TenantManager) CreateAPIKey(ctx context.Context, ts int64, req CreateAPIKeyRequest) (storage.APIKeyRecord, APIKeyString, error) {
	if err := ValidateCreateAPIKeyRequest(req); err != nil {
		return storage.APIKeyRecord{}, "", err
	}

	apiKeyString, err := NewAPIKeyString()
	if err != nil {
		return storage.APIKeyRecord{}, "", err
	}
	id, err := apiKeyString.ID()
	if err != nil {
		return storage.APIKeyRecord{}, "", err
	}
	hashed, err := apiKeyString.Hash()
	if err != nil {
		return storage.APIKeyRecord{}, "", err
	}

	scopes := req.Scopes
	if len(scopes) == 0 {
		scopes = []string{string(APIKeyScopeAll)}
	}

	record := storage.APIKeyRecord{
		ID:         id,
		HashString: string(hashed),
		TenantID:   req.TenantID,
		Scopes:     scopes,
		Status:     string(APIKeyStatusActive),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return storage.APIKeyRecord{}, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tenant, err := m.storage.GetTenant(ctx, tx, req.TenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.APIKeyRecord{}, "", ErrTenantNotFound
	}
	if err != nil {
		return storage.APIKeyRecord{}, "", err
	}
	if TenantStatus(tenant.Status) != TenantStatusActive {
		return storage.APIKeyRecord{}, "", ErrTenantInactive
	}

	if err := m.storage.AddAPIKey(ctx, tx, record); err != nil {
		return storage.APIKeyRecord{}, "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return storage.APIKeyRecord{}, "", err
	}

	return record, apiKeyString, nil
}

func (m *_TenantManager) RevokeAPIKey(ctx context.Context, ts int64, req RevokeAPIKeyRequest) error {
	if err := ValidateRevokeAPIKeyRequest(req); err != nil {
		return err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record, _, err := m.storage.GetAPIKey(ctx, tx, req.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAPIKeyNotFound
	}
	if err != nil {
		return err
	}
	if record.TenantID != req.TenantID {
		return ErrAPIKeyNotFound
	}

	if err := m.storage.RevokeAPIKey(ctx, tx, ts, req.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (m *_TenantManager) Authenticate(ctx context.Context, ks APIKeyString) (storage.APIKeyRecord, storage.Tenant, error) {
	id, err := ks.ID()
	if err != nil {
		return storage.APIKeyRecord{}, storage.Tenant{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.APIKeyRecord{}, storage.Tenant{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	record, tenant, err := m.storage.GetAPIKey(ctx, tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.APIKeyRecord{}, storage.Tenant{}, ErrAPIKeyNotFound
	}
	if err != nil {
		return storage.APIKeyRecord{}, storage.Tenant{}, err
	}

	if APIKeyStatus(record.Status) != APIKeyStatusActive {
		return storage.APIKeyRecord{}, storage.Tenant{}, ErrRevokedAPIKey
	}
	if TenantStatus(tenant.Status) != TenantStatusActive {
		return storage.APIKeyRecord{}, storage.Tenant{}, ErrTenantInactive
	}
	if err := VerifyAPIKeyString(ks, APIKeyHashedString(record.HashString)); err != nil {
		return storage.APIKeyRecord{}, storage.Tenant{}, err
	}

	return record, tenant, nil
}

// HasScope reports whether the scope list grants the scope, directly or through the
// catch-all scope.
func HasScope(scopes []string, scope APIKeyScope) bool {
	return lo.Contains(scopes, string(APIKeyScopeAll)) || lo.Contains(scopes, string(scope))
}

