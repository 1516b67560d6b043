package postgres

import (
	"context"
	"errors"

	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) PutWebhookConfig(ctx context.Context, tx storage.Tx, config model.WebhookConfig) error {
	query := `
INSERT INTO webhook_config (id, tenant_id, deleted, is_active, event_types, config, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (id) DO UPDATE SET
	tenant_id = excluded.tenant_id,
	deleted = excluded.deleted,
	is_active = excluded.is_active,
	event_types = excluded.event_types,
	config = excluded.config,
	updated_at = excluded.updated_at
`
	_, err := tx.Exec(
		ctx,
		query,
		config.ID,
		config.TenantID,
		config.Deleted,
		config.Active,
		config.EventTypes,
		config,
		config.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *_Storage) GetWebhookConfig(ctx context.Context, tx storage.Tx, id string) (model.WebhookConfig, error) {
	query := `SELECT config FROM webhook_config WHERE id = $1 AND NOT deleted`

	var config *model.WebhookConfig
	err := tx.QueryRow(ctx, query, id).Scan(&config)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WebhookConfig{}, model.ErrConfigNotFound
	}
	if err != nil {
		return model.WebhookConfig{}, err
	}

	return *config, nil
}

func (s *_Storage) ListWebhookConfig(ctx context.Context, tx storage.Tx, req storage.ListConfigRequest) (storage.ListConfigResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			config
		FROM webhook_config
		WHERE
			NOT deleted AND
			($3 = '' OR tenant_id = $3) AND
			(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR id = ANY($4)) AND
			(NOT $5 OR is_active)
	)
	SELECT
		total,
		config
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT config FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.TenantID, req.IDs, req.ActiveOnly)
	if err != nil {
		return storage.ListConfigResult{}, err
	}
	defer rows.Close()

	var res storage.ListConfigResult
	for rows.Next() {
		var total *int
		var config *model.WebhookConfig

		if err := rows.Scan(&total, &config); err != nil {
			return storage.ListConfigResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if config != nil {
			res.Records = append(res.Records, *config)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListConfigResult{}, err
	}

	return res, nil
}
