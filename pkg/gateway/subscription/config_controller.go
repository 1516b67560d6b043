// Package subscription manages webhook configs, the tenant-owned
// subscriptions outbound deliveries are fanned out to.
package subscription

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"

	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/util"
	"github.com/samber/lo"
)

type CreateConfigRequest struct {
	Requester  string   `json:"requester"`
	TenantID   string   `json:"tenant_id"`
	Url        string   `json:"url"`
	EventTypes []string `json:"event_types"`
	Active     *bool    `json:"is_active"`
}

type UpdateConfigRequest struct {
	ID         string   `json:"id"`
	Requester  string   `json:"requester"`
	TenantID   string   `json:"tenant_id"`
	Url        string   `json:"url"`
	EventTypes []string `json:"event_types"`
	Active     *bool    `json:"is_active"`
}

type RotateSecretRequest struct {
	ID        string `json:"id"`
	Requester string `json:"requester"`
	TenantID  string `json:"tenant_id"`
}

type DeleteConfigRequest struct {
	ID        string `json:"id"`
	Requester string `json:"requester"`
	TenantID  string `json:"tenant_id"`
}

type ListConfigRequest struct {
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
	TenantID string `json:"tenant_id"`
}

// ConfigController is the management surface of webhook configs. The signing
// secret is returned only by Create and RotateSecret.
type ConfigController interface {
	Create(ctx context.Context, ts int64, req CreateConfigRequest) (model.WebhookConfig, error)
	Get(ctx context.Context, tenantID, id string) (model.WebhookConfig, error)
	List(ctx context.Context, req ListConfigRequest) (storage.ListConfigResult, error)
	Update(ctx context.Context, ts int64, req UpdateConfigRequest) (model.WebhookConfig, error)
	RotateSecret(ctx context.Context, ts int64, req RotateSecretRequest) (model.WebhookConfig, error)
	Delete(ctx context.Context, ts int64, req DeleteConfigRequest) error
}

type _ConfigController struct {
	configStorage   storage.ConfigStorage
	deliveryStorage storage.DeliveryStorage
}

func NewConfigController(configStorage storage.ConfigStorage, deliveryStorage storage.DeliveryStorage) ConfigController {
	return &_ConfigController{
		configStorage:   configStorage,
		deliveryStorage: deliveryStorage,
	}
}

func (c *_ConfigController) Create(ctx context.Context, ts int64, req CreateConfigRequest) (model.WebhookConfig, error) {
	if err := ValidateCreateConfigRequest(req); err != nil {
		return model.WebhookConfig{}, err
	}

	secret, err := NewConfigSecret()
	if err != nil {
		return model.WebhookConfig{}, err
	}

	config := model.WebhookConfig{
		ID:         util.NewUUID(),
		TenantID:   req.TenantID,
		Url:        req.Url,
		EventTypes: req.EventTypes,
		Active:     req.Active == nil || *req.Active,
		Secret:     secret,
		CreatedAt:  ts,
		CreatedBy:  req.Requester,
		UpdatedAt:  ts,
		UpdatedBy:  req.Requester,
	}

	tx, ctx, err := c.configStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.WebhookConfig{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := c.configStorage.PutWebhookConfig(ctx, tx, config); err != nil {
		return model.WebhookConfig{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.WebhookConfig{}, err
	}

	return config, nil
}

func (c *_ConfigController) Get(ctx context.Context, tenantID, id string) (model.WebhookConfig, error) {
	tx, ctx, err := c.configStorage.CreateTx(ctx)
	if err != nil {
		return model.WebhookConfig{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	config, err := c.getForTenant(ctx, tx, tenantID, id)
	if err != nil {
		return model.WebhookConfig{}, err
	}

	config.Secret = ""
	return config, nil
}

func (c *_ConfigController) List(ctx context.Context, req ListConfigRequest) (storage.ListConfigResult, error) {
	if err := ValidateListConfigRequest(req); err != nil {
		return storage.ListConfigResult{}, err
	}

	tx, ctx, err := c.configStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListConfigResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := c.configStorage.ListWebhookConfig(ctx, tx, storage.ListConfigRequest{
		Offset:   req.Offset,
		Limit:    req.Limit,
		TenantID: req.TenantID,
	})
	if err != nil {
		return storage.ListConfigResult{}, err
	}

	result.Records = lo.Map(result.Records, func(config model.WebhookConfig, _ int) model.WebhookConfig {
		config.Secret = ""
		return config
	})
	return result, nil
}

func (c *_ConfigController) Update(ctx context.Context, ts int64, req UpdateConfigRequest) (model.WebhookConfig, error) {
	if err := ValidateUpdateConfigRequest(req); err != nil {
		return model.WebhookConfig{}, err
	}

	tx, ctx, err := c.configStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.WebhookConfig{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	config, err := c.getForTenant(ctx, tx, req.TenantID, req.ID)
	if err != nil {
		return model.WebhookConfig{}, err
	}

	config.Url = req.Url
	config.EventTypes = req.EventTypes
	if req.Active != nil {
		config.Active = *req.Active
	}
	config.UpdatedAt = ts
	config.UpdatedBy = req.Requester

	if err := c.configStorage.PutWebhookConfig(ctx, tx, config); err != nil {
		return model.WebhookConfig{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.WebhookConfig{}, err
	}

	config.Secret = ""
	return config, nil
}

func (c *_ConfigController) RotateSecret(ctx context.Context, ts int64, req RotateSecretRequest) (model.WebhookConfig, error) {
	if err := ValidateRotateSecretRequest(req); err != nil {
		return model.WebhookConfig{}, err
	}

	secret, err := NewConfigSecret()
	if err != nil {
		return model.WebhookConfig{}, err
	}

	tx, ctx, err := c.configStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.WebhookConfig{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	config, err := c.getForTenant(ctx, tx, req.TenantID, req.ID)
	if err != nil {
		return model.WebhookConfig{}, err
	}

	config.Secret = secret
	config.UpdatedAt = ts
	config.UpdatedBy = req.Requester

	if err := c.configStorage.PutWebhookConfig(ctx, tx, config); err != nil {
		return model.WebhookConfig{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.WebhookConfig{}, err
	}

	return config, nil
}

// Delete marks the config deleted and abandons its queued deliveries in the
// same transaction.
func (c *_ConfigController) Delete(ctx context.Context, ts int64, req DeleteConfigRequest) error {
	if err := ValidateDeleteConfigRequest(req); err != nil {
		return err
	}

	tx, ctx, err := c.configStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	config, err := c.getForTenant(ctx, tx, req.TenantID, req.ID)
	if err != nil {
		return err
	}

	config.Deleted = true
	config.Active = false
	config.UpdatedAt = ts
	config.UpdatedBy = req.Requester

	if err := c.configStorage.PutWebhookConfig(ctx, tx, config); err != nil {
		return err
	}
	if err := c.deliveryStorage.AbandonDeliveriesForConfig(ctx, tx, ts, config.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (c *_ConfigController) getForTenant(ctx context.Context, tx storage.Tx, tenantID, id string) (model.WebhookConfig, error) {
	config, err := c.configStorage.GetWebhookConfig(ctx, tx, id)
	if err != nil {
		return model.WebhookConfig{}, err
	}
	if config.TenantID != tenantID {
		return model.WebhookConfig{}, model.ErrConfigNotFound
	}
	return config, nil
}

// NewConfigSecret returns a fresh outbound signing secret.
func NewConfigSecret() (string, error) {
	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", err
	}
	return fmt.Sprintf("whsec_%s", base64.RawURLEncoding.EncodeToString(secretBytes)), nil
}
