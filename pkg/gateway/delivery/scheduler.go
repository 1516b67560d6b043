// Package delivery fans processed events out to subscribed webhook configs
// and drives the retry schedule of outbound deliveries.
package delivery

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/goccy/go-json"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/storage/postgres"
	"github.com/hookworks/hookd/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

const configPageSize = 100

type Config struct {
	Database      util.PostgresDatabaseConfig `yaml:"database"`
	CheckInterval int                         `yaml:"check_interval"` // Seconds between due delivery scans.
	BatchSize     int                         `yaml:"batch_size"`
	Timeout       int                         `yaml:"timeout"` // Seconds allowed per outbound request.
	MaxAttempts   int                         `yaml:"max_attempts"`
	LeaseSeconds  int                         `yaml:"lease_seconds"`  // Seconds before a stuck delivering row is reclaimed.
	MaxPerSecond  int                         `yaml:"max_per_second"` // Outbound request rate limit across the process.
	Workers       int                         `yaml:"workers"`
}

type SchedulerOption func(*Scheduler)

func WithDeliveryStorage(deliveryStorage storage.DeliveryStorage) SchedulerOption {
	return func(s *Scheduler) {
		s.deliveryStorage = deliveryStorage
	}
}

func WithConfigStorage(configStorage storage.ConfigStorage) SchedulerOption {
	return func(s *Scheduler) {
		s.configStorage = configStorage
	}
}

func WithHTTPClient(client *http.Client) SchedulerOption {
	return func(s *Scheduler) {
		s.client = client
	}
}

// WithNowFunc overrides the clock. Tests only.
func WithNowFunc(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithRandFunc overrides the jitter source. Tests only.
func WithRandFunc(rnd func() float64) SchedulerOption {
	return func(s *Scheduler) {
		s.rnd = rnd
	}
}

func WithBackoff(baseDelay, maxDelay time.Duration, jitterFrac float64) SchedulerOption {
	return func(s *Scheduler) {
		s.baseDelay = baseDelay
		s.maxDelay = maxDelay
		s.jitterFrac = jitterFrac
	}
}

// Scheduler owns the outbound side of the gateway: Enqueue materializes
// deliveries for a processed event, Run claims due deliveries and posts
// them with exponential backoff until success, dead letter or abandonment.
type Scheduler struct {
	checkInterval time.Duration
	timeout       time.Duration
	batchSize     int
	maxAttempts   int
	leaseSeconds  int
	workers       int
	baseDelay     time.Duration
	maxDelay      time.Duration
	jitterFrac    float64

	deliveryStorage storage.DeliveryStorage
	configStorage   storage.ConfigStorage
	client          *http.Client
	limiter         *rate.Limiter
	now             func() time.Time
	rnd             func() float64

	attemptCount    metric.Int64Counter
	successCount    metric.Int64Counter
	failedCount     metric.Int64Counter
	deadLetterCount metric.Int64Counter
}

func NewSchedulerWithConfig(cfg Config, opts ...SchedulerOption) (*Scheduler, error) {
	scheduler := &Scheduler{
		checkInterval: time.Second * time.Duration(cfg.CheckInterval),
		timeout:       time.Second * time.Duration(cfg.Timeout),
		batchSize:     cfg.BatchSize,
		maxAttempts:   cfg.MaxAttempts,
		leaseSeconds:  cfg.LeaseSeconds,
		workers:       cfg.Workers,
		baseDelay:     DefaultBaseDelay,
		maxDelay:      DefaultMaxDelay,
		jitterFrac:    DefaultJitterFrac,
		now:           time.Now,
		rnd:           rand.Float64,

		attemptCount:    otlp_util.NewInt64Counter("gateway.delivery.attempt.count", metric.WithDescription("The total number of outbound delivery attempts")),
		successCount:    otlp_util.NewInt64Counter("gateway.delivery.success.count", metric.WithDescription("The total number of deliveries accepted by the endpoint")),
		failedCount:     otlp_util.NewInt64Counter("gateway.delivery.failed.count", metric.WithDescription("The total number of failed delivery attempts")),
		deadLetterCount: otlp_util.NewInt64Counter("gateway.delivery.dead_letter.count", metric.WithDescription("The total number of deliveries moved to the dead letter set")),
	}

	if scheduler.checkInterval <= 0 {
		scheduler.checkInterval = 5 * time.Second
	}
	if scheduler.timeout <= 0 {
		scheduler.timeout = 10 * time.Second
	}
	if scheduler.batchSize <= 0 {
		scheduler.batchSize = 50
	}
	if scheduler.maxAttempts <= 0 {
		scheduler.maxAttempts = DefaultMaxAttempts
	}
	if scheduler.leaseSeconds <= 0 {
		scheduler.leaseSeconds = 300
	}
	if scheduler.workers <= 0 {
		scheduler.workers = 8
	}
	if cfg.MaxPerSecond > 0 {
		scheduler.limiter = rate.NewLimiter(rate.Limit(cfg.MaxPerSecond), cfg.MaxPerSecond)
	} else {
		scheduler.limiter = rate.NewLimiter(rate.Inf, 0)
	}

	for _, opt := range opts {
		opt(scheduler)
	}

	if scheduler.deliveryStorage == nil || scheduler.configStorage == nil {
		dbStorage, err := postgres.NewStorageWithConfig(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("create storage: %w", err)
		}
		if scheduler.deliveryStorage == nil {
			scheduler.deliveryStorage = dbStorage
		}
		if scheduler.configStorage == nil {
			scheduler.configStorage = dbStorage
		}
	}
	if scheduler.client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.DisableKeepAlives = true
		transport.MaxIdleConnsPerHost = -1
		scheduler.client = &http.Client{Timeout: scheduler.timeout, Transport: transport}
	}

	return scheduler, nil
}

// Enqueue creates one pending delivery per active config subscribed to the
// event. The delivery event type is namespaced with the provider.
func (s *Scheduler) Enqueue(ctx context.Context, event model.WebhookEvent) error {
	eventType := fmt.Sprintf("%s.%s", event.Provider, event.EventType)
	now := s.now().Unix()

	rawPayload, err := json.Marshal(model.DeliveryPayload{
		EventID:   event.ID,
		EventType: eventType,
		Data:      event.Payload,
		Timestamp: now,
	})
	if err != nil {
		return fmt.Errorf("marshal delivery payload: %w", err)
	}

	configs, err := s.subscribedConfigs(ctx, eventType)
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		return nil
	}

	deliveries := make([]model.WebhookDelivery, 0, len(configs))
	for _, config := range configs {
		deliveries = append(deliveries, model.WebhookDelivery{
			ID:          util.NewUUID(),
			ConfigID:    config.ID,
			EventID:     event.ID,
			EventType:   eventType,
			Status:      model.DeliveryStatusPending,
			MaxAttempts: s.maxAttempts,
			NextRetryAt: now,
			Payload:     rawPayload,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	tx, ctx, err := s.deliveryStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.deliveryStorage.AddWebhookDelivery(ctx, tx, deliveries...); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	logrus.Debugf("enqueued %d deliveries for event %s", len(deliveries), event.ID)
	return nil
}

func (s *Scheduler) subscribedConfigs(ctx context.Context, eventType string) ([]model.WebhookConfig, error) {
	tx, ctx, err := s.configStorage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var matched []model.WebhookConfig
	for offset := 0; ; offset += configPageSize {
		result, err := s.configStorage.ListWebhookConfig(ctx, tx, storage.ListConfigRequest{
			Offset:     offset,
			Limit:      configPageSize,
			ActiveOnly: true,
		})
		if err != nil {
			return nil, err
		}
		for _, config := range result.Records {
			if config.Subscribes(eventType) {
				matched = append(matched, config)
			}
		}
		if offset+len(result.Records) >= result.Total || len(result.Records) == 0 {
			break
		}
	}
	return matched, nil
}

func (s *Scheduler) Run(ctx context.Context) {
	logrus.Info("WebhookDelivery scheduler is now running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.checkInterval):
			s._Proc(ctx)
		}
	}
}

func (s *Scheduler) _Proc(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		processed, err := s.ProcessBatch(ctx)
		if err != nil {
			logrus.Errorf("failed to process due deliveries: %v", err)
			return
		}
		if processed == 0 {
			return
		}
		logrus.Debugf("processed %d due deliveries", processed)
	}
}

// ProcessBatch claims one batch of due deliveries and attempts them
// concurrently. It returns the number of claimed deliveries.
func (s *Scheduler) ProcessBatch(ctx context.Context) (int, error) {
	claimed, err := s.claimDeliveries(ctx)
	if err != nil {
		return 0, err
	}
	if len(claimed) == 0 {
		return 0, nil
	}

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i := range claimed {
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(claimedDelivery storage.ClaimedDelivery) {
			defer func() {
				<-sem
				wg.Done()
			}()
			s.deliver(ctx, claimedDelivery)
		}(claimed[i])
	}
	wg.Wait()
	return len(claimed), nil
}

func (s *Scheduler) claimDeliveries(ctx context.Context) ([]storage.ClaimedDelivery, error) {
	tx, ctx, err := s.deliveryStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	claimed, err := s.deliveryStorage.ClaimDueDeliveries(ctx, tx, s.now().Unix(), s.leaseSeconds, s.batchSize)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return claimed, nil
}

func (s *Scheduler) deliver(ctx context.Context, claimed storage.ClaimedDelivery) {
	deliveryRecord := claimed.Delivery
	now := s.now().Unix()

	if !claimed.Active {
		result := storage.SetDeliveryResultRequest{
			ID:           deliveryRecord.ID,
			Status:       model.DeliveryStatusAbandoned,
			AttemptCount: deliveryRecord.AttemptCount,
			LastError:    "webhook config inactive",
			UpdatedAt:    now,
		}
		if err := s.storeResult(ctx, result); err != nil {
			logrus.Errorf("failed to abandon delivery %s: %v", deliveryRecord.ID, err)
		}
		return
	}

	attempt := deliveryRecord.AttemptCount + 1
	s.attemptCount.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", deliveryRecord.EventType)))

	statusCode, postErr := s.post(ctx, claimed, now)

	result := storage.SetDeliveryResultRequest{
		ID:             deliveryRecord.ID,
		ResponseStatus: statusCode,
		AttemptCount:   attempt,
		UpdatedAt:      now,
	}

	switch {
	case postErr == nil && statusCode >= 200 && statusCode < 300:
		result.Status = model.DeliveryStatusSuccess
		s.successCount.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", deliveryRecord.EventType)))
	default:
		result.Status = model.DeliveryStatusFailed
		if postErr != nil {
			result.LastError = postErr.Error()
		} else {
			result.LastError = fmt.Sprintf("endpoint returned status %d", statusCode)
		}

		maxAttempts := deliveryRecord.MaxAttempts
		if maxAttempts <= 0 {
			maxAttempts = s.maxAttempts
		}
		permanent := postErr == nil && statusCode >= 400 && statusCode < 500 &&
			statusCode != http.StatusRequestTimeout && statusCode != http.StatusTooManyRequests

		if permanent || attempt >= maxAttempts {
			result.DeadLettered = true
			s.deadLetterCount.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", deliveryRecord.EventType)))
			logrus.Warnf("delivery %s dead lettered after %d attempts: %s", deliveryRecord.ID, attempt, result.LastError)
		} else {
			result.NextRetryAt = now + int64(NextRetryDelay(attempt, s.baseDelay, s.maxDelay, s.jitterFrac, s.rnd)/time.Second)
			logrus.Debugf("delivery %s attempt %d failed, next try at %d: %s", deliveryRecord.ID, attempt, result.NextRetryAt, result.LastError)
		}
		s.failedCount.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", deliveryRecord.EventType)))
	}

	if err := s.storeResult(ctx, result); err != nil {
		logrus.Errorf("failed to record result of delivery %s: %v", deliveryRecord.ID, err)
	}
}

func (s *Scheduler) post(ctx context.Context, claimed storage.ClaimedDelivery, ts int64) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claimed.Url, bytes.NewReader(claimed.Delivery.Payload))
	if err != nil {
		return 0, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventIDHeader, claimed.Delivery.EventID)
	SignRequest(req, claimed.Secret, ts, claimed.Delivery.Payload)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s%w", err.Error(), model.ErrEndpointUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return resp.StatusCode, nil
}

func (s *Scheduler) storeResult(ctx context.Context, result storage.SetDeliveryResultRequest) error {
	tx, ctx, err := s.deliveryStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.deliveryStorage.SetWebhookDeliveryResult(ctx, tx, result); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
