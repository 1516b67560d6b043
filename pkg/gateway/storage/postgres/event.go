package postgres

import (
	"context"
	"errors"

	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) AddWebhookEvent(ctx context.Context, tx storage.Tx, event model.WebhookEvent) (bool, error) {
	query := `
INSERT INTO webhook_event (id, provider, provider_event_id, event_type, status, received_at, event)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (provider, provider_event_id) DO NOTHING
`
	result, err := tx.Exec(
		ctx,
		query,
		event.ID,
		event.Provider,
		event.ProviderEventID,
		event.EventType,
		event.Status,
		event.ReceivedAt,
		event,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *_Storage) GetWebhookEvent(ctx context.Context, tx storage.Tx, id string) (model.WebhookEvent, error) {
	query := `SELECT event FROM webhook_event WHERE id = $1`

	var event *model.WebhookEvent
	err := tx.QueryRow(ctx, query, id).Scan(&event)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WebhookEvent{}, model.ErrEventNotFound
	}
	if err != nil {
		return model.WebhookEvent{}, err
	}

	return *event, nil
}

func (s *_Storage) SetWebhookEventResult(ctx context.Context, tx storage.Tx, req storage.SetEventResultRequest) error {
	query := `
UPDATE webhook_event
SET
	status = $2,
	event = event || jsonb_build_object(
		'status', $2::TEXT,
		'processed_at', $3::BIGINT,
		'error_message', $4::TEXT,
		'replay_count', replay_count + CASE WHEN $5 THEN 1 ELSE 0 END),
	replay_count = replay_count + CASE WHEN $5 THEN 1 ELSE 0 END
WHERE id = $1
`
	result, err := tx.Exec(ctx, query, req.ID, req.Status, req.ProcessedAt, req.ErrorMessage, req.BumpReplay)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.ErrEventNotFound
	}
	return nil
}

func (s *_Storage) ListWebhookEvent(ctx context.Context, tx storage.Tx, req storage.ListEventRequest) (storage.ListEventResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			event
		FROM webhook_event
		WHERE
			($3 = '' OR provider = $3) AND
			(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR status = ANY($4)) AND
			(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR id = ANY($5))
	)
	SELECT
		total,
		event
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT event FROM filtered_record ORDER BY rec_id DESC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.Provider, req.Statuses, req.IDs)
	if err != nil {
		return storage.ListEventResult{}, err
	}
	defer rows.Close()

	var res storage.ListEventResult
	for rows.Next() {
		var total *int
		var event *model.WebhookEvent

		if err := rows.Scan(&total, &event); err != nil {
			return storage.ListEventResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if event != nil {
			res.Records = append(res.Records, *event)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListEventResult{}, err
	}

	return res, nil
}
