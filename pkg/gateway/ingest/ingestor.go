// Package ingest receives provider webhook requests, verifies their
// signatures, records them idempotently and dispatches them to registered
// event handlers.
package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/goccy/go-json"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/verifier"
	"github.com/hookworks/hookd/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrIgnoreEvent can be returned by a Handler to record the event as ignored
// instead of processed. Ignored events produce no deliveries.
var ErrIgnoreEvent = errors.New("event ignored by handler")

// Handler consumes one verified, deduplicated inbound event.
type Handler interface {
	Handle(ctx context.Context, event model.WebhookEvent) error
}

type HandlerFunc func(ctx context.Context, event model.WebhookEvent) error

func (f HandlerFunc) Handle(ctx context.Context, event model.WebhookEvent) error {
	return f(ctx, event)
}

// Enqueuer fans a processed event out into deliveries.
type Enqueuer interface {
	Enqueue(ctx context.Context, event model.WebhookEvent) error
}

// Notifier receives events after each processing pass. Used to feed the
// live event stream.
type Notifier interface {
	NotifyEvent(event model.WebhookEvent)
}

type IngestResult struct {
	EventID   string            `json:"event_id,omitempty"`
	Status    model.EventStatus `json:"status,omitempty"`
	Duplicate bool              `json:"duplicate,omitempty"`
}

type Ingestor interface {
	// Ingest verifies, records and processes one inbound provider request.
	// A verification failure returns an error and leaves no record. A
	// duplicate of an already recorded provider event is reported with
	// Duplicate set and is not processed again.
	Ingest(ctx context.Context, ts int64, provider model.Provider, headers http.Header, rawBody []byte) (IngestResult, error)

	// Dispatch runs the registered handler for an already stored event and
	// records the outcome. bumpReplay marks the pass as a manual replay.
	Dispatch(ctx context.Context, ts int64, event model.WebhookEvent, bumpReplay bool) (model.WebhookEvent, error)

	// RegisterHandler binds a handler to a provider and an event type
	// pattern. A pattern ending with '*' matches any suffix. Registration
	// order decides precedence.
	RegisterHandler(provider model.Provider, pattern string, handler Handler)
}

type handlerEntry struct {
	provider model.Provider
	pattern  string
	handler  Handler
}

type _Ingestor struct {
	storage  storage.EventStorage
	registry *verifier.Registry
	enqueuer Enqueuer
	notifier Notifier
	handlers []handlerEntry

	receivedCount  metric.Int64Counter
	duplicateCount metric.Int64Counter
	processedCount metric.Int64Counter
	failedCount    metric.Int64Counter
}

type IngestorOption func(*_Ingestor)

func WithEnqueuer(enqueuer Enqueuer) IngestorOption {
	return func(i *_Ingestor) {
		i.enqueuer = enqueuer
	}
}

func WithNotifier(notifier Notifier) IngestorOption {
	return func(i *_Ingestor) {
		i.notifier = notifier
	}
}

func NewIngestor(eventStorage storage.EventStorage, registry *verifier.Registry, opts ...IngestorOption) Ingestor {
	ingestor := &_Ingestor{
		storage:  eventStorage,
		registry: registry,

		receivedCount:  otlp_util.NewInt64Counter("gateway.ingest.event.received.count", metric.WithDescription("The total number of inbound webhook requests accepted")),
		duplicateCount: otlp_util.NewInt64Counter("gateway.ingest.event.duplicate.count", metric.WithDescription("The total number of duplicate provider events collapsed")),
		processedCount: otlp_util.NewInt64Counter("gateway.ingest.event.processed.count", metric.WithDescription("The total number of events processed successfully")),
		failedCount:    otlp_util.NewInt64Counter("gateway.ingest.event.failed.count", metric.WithDescription("The total number of events whose handler failed")),
	}
	for _, opt := range opts {
		opt(ingestor)
	}
	return ingestor
}

func (i *_Ingestor) RegisterHandler(provider model.Provider, pattern string, handler Handler) {
	i.handlers = append(i.handlers, handlerEntry{provider: provider, pattern: pattern, handler: handler})
}

func (i *_Ingestor) Ingest(ctx context.Context, ts int64, provider model.Provider, headers http.Header, rawBody []byte) (IngestResult, error) {
	if len(rawBody) == 0 {
		return IngestResult{}, fmt.Errorf("empty request body%w", model.ErrInvalidParameter)
	}

	if err := i.registry.Verify(ctx, provider, headers, rawBody); err != nil {
		logrus.Warnf("rejected %s webhook request: %v", provider, err)
		return IngestResult{}, err
	}

	providerEventID, eventType, err := extractEnvelope(provider, rawBody)
	if err != nil {
		return IngestResult{}, err
	}

	event := model.WebhookEvent{
		ID:              util.NewUUID(),
		Provider:        provider,
		ProviderEventID: providerEventID,
		EventType:       eventType,
		Status:          model.EventStatusPending,
		ReceivedAt:      ts,
		Payload:         rawBody,
	}

	inserted, err := i.storeEvent(ctx, event)
	if err != nil {
		return IngestResult{}, err
	}
	if !inserted {
		i.duplicateCount.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", string(provider))))
		logrus.Debugf("duplicate %s event %s collapsed", provider, providerEventID)
		return IngestResult{Duplicate: true}, nil
	}
	i.receivedCount.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", string(provider))))

	event, err = i.Dispatch(ctx, ts, event, false)
	if err != nil {
		return IngestResult{}, err
	}
	return IngestResult{EventID: event.ID, Status: event.Status}, nil
}

func (i *_Ingestor) Dispatch(ctx context.Context, ts int64, event model.WebhookEvent, bumpReplay bool) (model.WebhookEvent, error) {
	handlerErr := i.runHandler(ctx, event)

	switch {
	case handlerErr == nil:
		event.Status = model.EventStatusProcessed
		event.ErrorMessage = ""
	case errors.Is(handlerErr, ErrIgnoreEvent):
		event.Status = model.EventStatusIgnored
		event.ErrorMessage = ""
	default:
		event.Status = model.EventStatusFailed
		event.ErrorMessage = handlerErr.Error()
		logrus.Warnf("handler failed for event %s: %v", event.ID, handlerErr)
	}
	event.ProcessedAt = ts
	if bumpReplay {
		event.ReplayCount++
	}

	if err := i.storeResult(ctx, event, bumpReplay); err != nil {
		return model.WebhookEvent{}, err
	}

	attrs := metric.WithAttributes(attribute.String("provider", string(event.Provider)), attribute.String("event_type", event.EventType))
	switch event.Status {
	case model.EventStatusProcessed:
		i.processedCount.Add(ctx, 1, attrs)
	case model.EventStatusFailed:
		i.failedCount.Add(ctx, 1, attrs)
	}

	if event.Status == model.EventStatusProcessed && i.enqueuer != nil {
		if err := i.enqueuer.Enqueue(ctx, event); err != nil {
			logrus.Errorf("failed to enqueue deliveries for event %s: %v", event.ID, err)
		}
	}
	if i.notifier != nil {
		i.notifier.NotifyEvent(event)
	}
	return event, nil
}

func (i *_Ingestor) runHandler(ctx context.Context, event model.WebhookEvent) (err error) {
	handler := i.findHandler(event.Provider, event.EventType)
	if handler == nil {
		return ErrIgnoreEvent
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler.Handle(ctx, event)
}

func (i *_Ingestor) findHandler(provider model.Provider, eventType string) Handler {
	for _, entry := range i.handlers {
		if entry.provider != provider {
			continue
		}
		if matchEventType(entry.pattern, eventType) {
			return entry.handler
		}
	}
	return nil
}

func matchEventType(pattern, eventType string) bool {
	if pattern == eventType {
		return true
	}
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		prefix := pattern[:n-1]
		return len(eventType) >= len(prefix) && eventType[:len(prefix)] == prefix
	}
	return false
}

func (i *_Ingestor) storeEvent(ctx context.Context, event model.WebhookEvent) (bool, error) {
	tx, ctx, err := i.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted, err := i.storage.AddWebhookEvent(ctx, tx, event)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return inserted, nil
}

func (i *_Ingestor) storeResult(ctx context.Context, event model.WebhookEvent, bumpReplay bool) error {
	tx, ctx, err := i.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req := storage.SetEventResultRequest{
		ID:           event.ID,
		Status:       event.Status,
		ProcessedAt:  event.ProcessedAt,
		ErrorMessage: event.ErrorMessage,
		BumpReplay:   bumpReplay,
	}
	if err := i.storage.SetWebhookEventResult(ctx, tx, req); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func extractEnvelope(provider model.Provider, rawBody []byte) (string, string, error) {
	var id, eventType string
	switch provider {
	case model.ProviderPayPal:
		envelope := struct {
			ID        string `json:"id"`
			EventType string `json:"event_type"`
		}{}
		if err := json.Unmarshal(rawBody, &envelope); err != nil {
			return "", "", fmt.Errorf("malformed payload: %s%w", err.Error(), model.ErrInvalidParameter)
		}
		id, eventType = envelope.ID, envelope.EventType
	case model.ProviderStripe:
		envelope := struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		}{}
		if err := json.Unmarshal(rawBody, &envelope); err != nil {
			return "", "", fmt.Errorf("malformed payload: %s%w", err.Error(), model.ErrInvalidParameter)
		}
		id, eventType = envelope.ID, envelope.Type
	default:
		envelope := struct {
			EventID   string `json:"event_id"`
			EventType string `json:"event_type"`
		}{}
		if err := json.Unmarshal(rawBody, &envelope); err != nil {
			return "", "", fmt.Errorf("malformed payload: %s%w", err.Error(), model.ErrInvalidParameter)
		}
		id, eventType = envelope.EventID, envelope.EventType
	}

	if id == "" {
		return "", "", fmt.Errorf("payload carries no event id%w", model.ErrInvalidParameter)
	}
	if eventType == "" {
		return "", "", fmt.Errorf("payload carries no event type%w", model.ErrInvalidParameter)
	}
	return id, eventType, nil
}
