// Package replay exposes the recovery operations of the gateway: re-running
// stored inbound events through their handlers and redriving terminal
// outbound deliveries.
package replay

import (
	"context"
	"database/sql"

	"github.com/hookworks/hookd/pkg/gateway/ingest"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/sirupsen/logrus"
)

type Service interface {
	ListEvents(ctx context.Context, req storage.ListEventRequest) (storage.ListEventResult, error)
	GetEvent(ctx context.Context, id string) (model.WebhookEvent, error)

	// ReplayEvent re-runs the stored payload of an event through its handler
	// and records a fresh outcome. The stored row is updated in place.
	ReplayEvent(ctx context.Context, ts int64, id string) (model.WebhookEvent, error)

	// The delivery operations take the tenant of the caller. A non-empty
	// tenantID confines them to deliveries whose config belongs to that
	// tenant; deliveries of other tenants read as not found.
	ListDeliveries(ctx context.Context, req storage.ListDeliveryRequest) (storage.ListDeliveryResult, error)
	GetDelivery(ctx context.Context, tenantID, id string) (model.WebhookDelivery, error)

	// RedriveDelivery returns a terminal delivery to pending with a fresh
	// attempt budget. Non-terminal deliveries are rejected.
	RedriveDelivery(ctx context.Context, ts int64, tenantID, id string) (model.WebhookDelivery, error)
}

type _Service struct {
	eventStorage    storage.EventStorage
	deliveryStorage storage.DeliveryStorage
	ingestor        ingest.Ingestor
}

func NewService(eventStorage storage.EventStorage, deliveryStorage storage.DeliveryStorage, ingestor ingest.Ingestor) Service {
	return &_Service{
		eventStorage:    eventStorage,
		deliveryStorage: deliveryStorage,
		ingestor:        ingestor,
	}
}

func (s *_Service) ListEvents(ctx context.Context, req storage.ListEventRequest) (storage.ListEventResult, error) {
	tx, ctx, err := s.eventStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListEventResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.eventStorage.ListWebhookEvent(ctx, tx, req)
}

func (s *_Service) GetEvent(ctx context.Context, id string) (model.WebhookEvent, error) {
	tx, ctx, err := s.eventStorage.CreateTx(ctx)
	if err != nil {
		return model.WebhookEvent{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.eventStorage.GetWebhookEvent(ctx, tx, id)
}

func (s *_Service) ReplayEvent(ctx context.Context, ts int64, id string) (model.WebhookEvent, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return model.WebhookEvent{}, err
	}

	logrus.Infof("replaying event %s (%s %s)", event.ID, event.Provider, event.EventType)
	return s.ingestor.Dispatch(ctx, ts, event, true)
}

func (s *_Service) ListDeliveries(ctx context.Context, req storage.ListDeliveryRequest) (storage.ListDeliveryResult, error) {
	tx, ctx, err := s.deliveryStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListDeliveryResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.deliveryStorage.ListWebhookDelivery(ctx, tx, req)
}

func (s *_Service) GetDelivery(ctx context.Context, tenantID, id string) (model.WebhookDelivery, error) {
	tx, ctx, err := s.deliveryStorage.CreateTx(ctx)
	if err != nil {
		return model.WebhookDelivery{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return s.deliveryStorage.GetWebhookDelivery(ctx, tx, tenantID, id)
}

func (s *_Service) RedriveDelivery(ctx context.Context, ts int64, tenantID, id string) (model.WebhookDelivery, error) {
	tx, ctx, err := s.deliveryStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.WebhookDelivery{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	deliveryRecord, err := s.deliveryStorage.GetWebhookDelivery(ctx, tx, tenantID, id)
	if err != nil {
		return model.WebhookDelivery{}, err
	}
	if !deliveryRecord.Terminal() {
		return model.WebhookDelivery{}, model.ErrDeliveryNotTerminal
	}

	if err := s.deliveryStorage.ResetWebhookDelivery(ctx, tx, ts, id); err != nil {
		return model.WebhookDelivery{}, err
	}

	deliveryRecord, err = s.deliveryStorage.GetWebhookDelivery(ctx, tx, tenantID, id)
	if err != nil {
		return model.WebhookDelivery{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.WebhookDelivery{}, err
	}

	logrus.Infof("delivery %s redriven", id)
	return deliveryRecord, nil
}
