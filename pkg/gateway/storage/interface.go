package storage

import (
	"context"
	"database/sql"

	"github.com/hookworks/hookd/pkg/gateway/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type TxWrapperOption struct {
	write bool
	level sql.IsolationLevel
}

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListEventRequest is the request to list inbound webhook events.
type ListEventRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	Provider string   `json:"provider"`
	Statuses []string `json:"statuses"`
	IDs      []string `json:"ids"`
}

type ListEventResult struct {
	Total   int                  `json:"total"`
	Records []model.WebhookEvent `json:"records"`
}

// SetEventResultRequest records the outcome of one processing pass of an
// inbound event.
type SetEventResultRequest struct {
	ID           string            `json:"id"`
	Status       model.EventStatus `json:"status"`
	ProcessedAt  int64             `json:"processed_at"`
	ErrorMessage string            `json:"error_message"`
	BumpReplay   bool              `json:"bump_replay"` // Increment replay_count (manual replay pass).
}

// EventStorage is the durable, idempotent record of inbound events.
type EventStorage interface {
	TransactionInterface

	// AddWebhookEvent inserts the event keyed by (provider, provider_event_id).
	// It returns false without error when a row for the key already exists.
	AddWebhookEvent(ctx context.Context, tx Tx, event model.WebhookEvent) (bool, error)
	GetWebhookEvent(ctx context.Context, tx Tx, id string) (model.WebhookEvent, error)
	SetWebhookEventResult(ctx context.Context, tx Tx, req SetEventResultRequest) error
	ListWebhookEvent(ctx context.Context, tx Tx, req ListEventRequest) (ListEventResult, error)
}

// ListConfigRequest is the request to list webhook configs.
type ListConfigRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	TenantID   string   `json:"tenant_id"`
	IDs        []string `json:"ids"`
	ActiveOnly bool     `json:"active_only"`
}

type ListConfigResult struct {
	Total   int                   `json:"total"`
	Records []model.WebhookConfig `json:"records"`
}

type ConfigStorage interface {
	TransactionInterface

	// PutWebhookConfig inserts or fully replaces a webhook config.
	PutWebhookConfig(ctx context.Context, tx Tx, config model.WebhookConfig) error
	GetWebhookConfig(ctx context.Context, tx Tx, id string) (model.WebhookConfig, error)
	ListWebhookConfig(ctx context.Context, tx Tx, req ListConfigRequest) (ListConfigResult, error)
}

// ClaimedDelivery is a due delivery claimed by a worker, joined with the
// endpoint coordinates it needs for the attempt. Active reflects the config
// state at claim time.
type ClaimedDelivery struct {
	Delivery model.WebhookDelivery `json:"delivery"`
	Url      string                `json:"url"`
	Secret   string                `json:"secret"`
	Active   bool                  `json:"active"`
}

// SetDeliveryResultRequest records the outcome of one delivery attempt.
type SetDeliveryResultRequest struct {
	ID             string               `json:"id"`
	Status         model.DeliveryStatus `json:"status"`
	ResponseStatus int                  `json:"response_status"`
	AttemptCount   int                  `json:"attempt_count"`
	NextRetryAt    int64                `json:"next_retry_at"`
	DeadLettered   bool                 `json:"dead_lettered"`
	LastError      string               `json:"last_error"`
	UpdatedAt      int64                `json:"updated_at"`
}

// ListDeliveryRequest is the request to list outbound deliveries.
type ListDeliveryRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters. TenantID scopes the listing to deliveries whose config
	// belongs to that tenant; empty means no tenant scoping.
	TenantID     string   `json:"tenant_id"`
	ConfigID     string   `json:"config_id"`
	EventID      string   `json:"event_id"`
	Statuses     []string `json:"statuses"`
	DeadLettered *bool    `json:"dead_lettered"`
}

type ListDeliveryResult struct {
	Total   int                     `json:"total"`
	Records []model.WebhookDelivery `json:"records"`
}

type DeliveryStorage interface {
	TransactionInterface

	AddWebhookDelivery(ctx context.Context, tx Tx, deliveries ...model.WebhookDelivery) error

	// GetWebhookDelivery looks up a delivery by ID. A non-empty tenantID
	// restricts the lookup to deliveries whose config belongs to that
	// tenant; a delivery owned by another tenant reads as not found.
	GetWebhookDelivery(ctx context.Context, tx Tx, tenantID, id string) (model.WebhookDelivery, error)

	// ClaimDueDeliveries atomically claims up to batchSize due deliveries and
	// marks them delivering. A config with a delivery already in flight is
	// skipped, so at most one delivery per config is claimed across all
	// workers. Deliveries stuck in delivering longer than leaseSeconds are
	// reclaimable.
	ClaimDueDeliveries(ctx context.Context, tx Tx, now int64, leaseSeconds int, batchSize int) ([]ClaimedDelivery, error)
	SetWebhookDeliveryResult(ctx context.Context, tx Tx, req SetDeliveryResultRequest) error

	// ResetWebhookDelivery returns a terminally failed or abandoned delivery
	// to pending with a fresh attempt budget.
	ResetWebhookDelivery(ctx context.Context, tx Tx, ts int64, id string) error

	// AbandonDeliveriesForConfig marks every non-terminal delivery of the
	// config abandoned.
	AbandonDeliveriesForConfig(ctx context.Context, tx Tx, ts int64, configID string) error
	ListWebhookDelivery(ctx context.Context, tx Tx, req ListDeliveryRequest) (ListDeliveryResult, error)
}

type AuthStorage interface {
	TransactionInterface

	AddTenant(ctx context.Context, tx Tx, tenant Tenant) error
	GetTenant(ctx context.Context, tx Tx, id string) (Tenant, error)
	AddAPIKey(ctx context.Context, tx Tx, key APIKeyRecord) error
	GetAPIKey(ctx context.Context, tx Tx, id string) (APIKeyRecord, Tenant, error)
	RevokeAPIKey(ctx context.Context, tx Tx, ts int64, id string) error
}

// Tenant owns webhook configs and management API keys.
type Tenant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"` // active | inactive
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// APIKeyRecord is the stored form of a management API key. Only the bcrypt
// hash of the key string is kept.
type APIKeyRecord struct {
	ID         string   `json:"id"`
	HashString string   `json:"hash_string"`
	TenantID   string   `json:"tenant_id"`
	Scopes     []string `json:"scopes"`
	Status     string   `json:"status"` // active | revoked
	CreatedAt  int64    `json:"created_at"`
	UpdatedAt  int64    `json:"updated_at"`
}
