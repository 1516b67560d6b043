package postgres

import (
	"context"
	"errors"

	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) AddWebhookDelivery(ctx context.Context, tx storage.Tx, deliveries ...model.WebhookDelivery) error {
	query := `
INSERT INTO webhook_delivery (id, config_id, event_id, event_type, status, dead_lettered, attempt_count, next_retry_at, claimed_at, delivery, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $10)
`
	for _, d := range deliveries {
		_, err := tx.Exec(
			ctx,
			query,
			d.ID,
			d.ConfigID,
			d.EventID,
			d.EventType,
			d.Status,
			d.DeadLettered,
			d.AttemptCount,
			d.NextRetryAt,
			d,
			d.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) GetWebhookDelivery(ctx context.Context, tx storage.Tx, tenantID, id string) (model.WebhookDelivery, error) {
	// The tenant scope joins through webhook_config, which keeps its
	// tenant_id even after a soft delete.
	query := `
SELECT d.delivery
FROM webhook_delivery d
WHERE
	d.id = $1 AND
	($2 = '' OR EXISTS (SELECT 1 FROM webhook_config c WHERE c.id = d.config_id AND c.tenant_id = $2))
`

	var delivery *model.WebhookDelivery
	err := tx.QueryRow(ctx, query, id, tenantID).Scan(&delivery)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WebhookDelivery{}, model.ErrDeliveryNotFound
	}
	if err != nil {
		return model.WebhookDelivery{}, err
	}

	return *delivery, nil
}

// ClaimDueDeliveries picks at most one due delivery per config. The claim is
// an UPDATE under FOR UPDATE SKIP LOCKED, so concurrent workers never claim
// the same row and a live claim on a config blocks further claims until it is
// resolved or its lease expires.
func (s *_Storage) ClaimDueDeliveries(ctx context.Context, tx storage.Tx, now int64, leaseSeconds int, batchSize int) ([]storage.ClaimedDelivery, error) {
	query := `
	WITH due AS (
		SELECT d.rec_id
		FROM webhook_delivery d
		WHERE
			(
				(d.status IN ('pending', 'failed') AND NOT d.dead_lettered AND d.next_retry_at <= $1)
				OR (d.status = 'delivering' AND d.claimed_at <= $1 - $2)
			) AND
			NOT EXISTS (
				SELECT 1
				FROM webhook_delivery live
				WHERE
					live.config_id = d.config_id AND
					live.rec_id <> d.rec_id AND
					live.status = 'delivering' AND
					live.claimed_at > $1 - $2
			) AND
			d.rec_id = (
				SELECT first.rec_id
				FROM webhook_delivery first
				WHERE
					first.config_id = d.config_id AND
					(
						(first.status IN ('pending', 'failed') AND NOT first.dead_lettered AND first.next_retry_at <= $1)
						OR (first.status = 'delivering' AND first.claimed_at <= $1 - $2)
					)
				ORDER BY first.next_retry_at ASC, first.rec_id ASC
				LIMIT 1
			)
		ORDER BY d.next_retry_at ASC, d.rec_id ASC
		LIMIT $3
		FOR UPDATE SKIP LOCKED
	),
	claimed AS (
		UPDATE webhook_delivery u
		SET
			status = 'delivering',
			claimed_at = $1,
			updated_at = $1,
			delivery = u.delivery || jsonb_build_object('status', 'delivering', 'updated_at', $1::BIGINT)
		FROM due
		WHERE u.rec_id = due.rec_id
		RETURNING u.config_id, u.delivery
	)
	SELECT
		claimed.delivery,
		COALESCE(c.config->>'url', ''),
		COALESCE(c.config->>'secret', ''),
		COALESCE(c.is_active AND NOT c.deleted, FALSE)
	FROM claimed
	LEFT JOIN webhook_config c ON c.id = claimed.config_id
	`
	rows, err := tx.Query(ctx, query, now, leaseSeconds, batchSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.ClaimedDelivery, 0, batchSize)
	for rows.Next() {
		var record storage.ClaimedDelivery
		var delivery *model.WebhookDelivery
		if err := rows.Scan(&delivery, &record.Url, &record.Secret, &record.Active); err != nil {
			return nil, err
		}
		record.Delivery = *delivery
		record.Delivery.Status = model.DeliveryStatusDelivering
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *_Storage) SetWebhookDeliveryResult(ctx context.Context, tx storage.Tx, req storage.SetDeliveryResultRequest) error {
	query := `
UPDATE webhook_delivery
SET
	status = $2,
	dead_lettered = $6,
	attempt_count = $4,
	next_retry_at = $5,
	updated_at = $8,
	delivery = delivery || jsonb_build_object(
		'status', $2::TEXT,
		'response_status', $3::INT,
		'attempt_count', $4::INT,
		'next_retry_at', $5::BIGINT,
		'dead_lettered', $6::BOOLEAN,
		'last_error', $7::TEXT,
		'updated_at', $8::BIGINT)
WHERE id = $1
`
	result, err := tx.Exec(
		ctx,
		query,
		req.ID,
		req.Status,
		req.ResponseStatus,
		req.AttemptCount,
		req.NextRetryAt,
		req.DeadLettered,
		req.LastError,
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.ErrDeliveryNotFound
	}
	return nil
}

func (s *_Storage) ResetWebhookDelivery(ctx context.Context, tx storage.Tx, ts int64, id string) error {
	query := `
UPDATE webhook_delivery
SET
	status = 'pending',
	dead_lettered = FALSE,
	attempt_count = 0,
	next_retry_at = $2,
	claimed_at = 0,
	updated_at = $2,
	delivery = delivery || jsonb_build_object(
		'status', 'pending',
		'dead_lettered', FALSE,
		'attempt_count', 0,
		'next_retry_at', $2::BIGINT,
		'last_error', '',
		'updated_at', $2::BIGINT)
WHERE id = $1
`
	result, err := tx.Exec(ctx, query, id, ts)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.ErrDeliveryNotFound
	}
	return nil
}

func (s *_Storage) AbandonDeliveriesForConfig(ctx context.Context, tx storage.Tx, ts int64, configID string) error {
	query := `
UPDATE webhook_delivery
SET
	status = 'abandoned',
	next_retry_at = 0,
	updated_at = $2,
	delivery = delivery || jsonb_build_object(
		'status', 'abandoned',
		'next_retry_at', 0,
		'updated_at', $2::BIGINT)
WHERE
	config_id = $1 AND
	status IN ('pending', 'delivering', 'failed') AND
	NOT (status = 'failed' AND dead_lettered)
`
	_, err := tx.Exec(ctx, query, configID, ts)
	return err
}

func (s *_Storage) ListWebhookDelivery(ctx context.Context, tx storage.Tx, req storage.ListDeliveryRequest) (storage.ListDeliveryResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			delivery
		FROM webhook_delivery
		WHERE
			($3 = '' OR config_id = $3) AND
			($4 = '' OR event_id = $4) AND
			(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR status = ANY($5)) AND
			($6::BOOLEAN IS NULL OR dead_lettered = $6) AND
			($7 = '' OR EXISTS (SELECT 1 FROM webhook_config c WHERE c.id = webhook_delivery.config_id AND c.tenant_id = $7))
	)
	SELECT
		total,
		delivery
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT delivery FROM filtered_record ORDER BY rec_id DESC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.ConfigID, req.EventID, req.Statuses, req.DeadLettered, req.TenantID)
	if err != nil {
		return storage.ListDeliveryResult{}, err
	}
	defer rows.Close()

	var res storage.ListDeliveryResult
	for rows.Next() {
		var total *int
		var delivery *model.WebhookDelivery

		if err := rows.Scan(&total, &delivery); err != nil {
			return storage.ListDeliveryResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if delivery != nil {
			res.Records = append(res.Records, *delivery)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListDeliveryResult{}, err
	}

	return res, nil
}
