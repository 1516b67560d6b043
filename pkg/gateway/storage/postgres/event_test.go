package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/storage/postgres"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
)

type EventStorageTestSuite struct {
	BaseTestSuite
	storage storage.EventStorage
}

func TestEventStorage(t *testing.T) {
	suite.Run(t, new(EventStorageTestSuite))
}

func (s *EventStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/event"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *EventStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *EventStorageTestSuite) TestAddWebhookEvent() {
	event := model.WebhookEvent{
		ID:              "evt_new",
		Provider:        model.ProviderStripe,
		ProviderEventID: "stripe_evt_new",
		EventType:       "charge.succeeded",
		Status:          model.EventStatusPending,
		ReceivedAt:      1713000100,
		Payload:         []byte(`{"id":"stripe_evt_new","type":"charge.succeeded"}`),
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	inserted, err := s.storage.AddWebhookEvent(ctx, tx, event)
	s.Require().NoError(err)
	s.Require().True(inserted)

	// A second arrival of the same provider event collapses onto the first row.
	duplicate := event
	duplicate.ID = "evt_other"
	inserted, err = s.storage.AddWebhookEvent(ctx, tx, duplicate)
	s.Require().NoError(err)
	s.Require().False(inserted)

	stored, err := s.storage.GetWebhookEvent(ctx, tx, event.ID)
	s.Require().NoError(err)
	s.Assert().Equal(event, stored)
}

func (s *EventStorageTestSuite) TestGetWebhookEventNotFound() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = s.storage.GetWebhookEvent(ctx, tx, "no_such_event")
	s.Require().ErrorIs(err, model.ErrEventNotFound)
}

func (s *EventStorageTestSuite) TestSetWebhookEventResult() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	req := storage.SetEventResultRequest{
		ID:          "evt_1",
		Status:      model.EventStatusProcessed,
		ProcessedAt: 1713000200,
		BumpReplay:  true,
	}
	s.Require().NoError(s.storage.SetWebhookEventResult(ctx, tx, req))

	stored, err := s.storage.GetWebhookEvent(ctx, tx, "evt_1")
	s.Require().NoError(err)
	s.Assert().Equal(model.EventStatusProcessed, stored.Status)
	s.Assert().Equal(int64(1713000200), stored.ProcessedAt)
	s.Assert().Equal(1, stored.ReplayCount)

	err = s.storage.SetWebhookEventResult(ctx, tx, storage.SetEventResultRequest{ID: "no_such_event", Status: model.EventStatusProcessed})
	s.Require().ErrorIs(err, model.ErrEventNotFound)
}

func (s *EventStorageTestSuite) TestListWebhookEvent() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := s.storage.ListWebhookEvent(ctx, tx, storage.ListEventRequest{Limit: 10})
	s.Require().NoError(err)
	s.Assert().Equal(3, result.Total)
	s.Require().Equal(3, len(result.Records))
	// Most recent first.
	s.Assert().Equal("evt_3", result.Records[0].ID)

	result, err = s.storage.ListWebhookEvent(ctx, tx, storage.ListEventRequest{
		Limit:    10,
		Provider: "paypal",
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, result.Total)
	s.Require().Equal(1, len(result.Records))
	s.Assert().Equal("evt_2", result.Records[0].ID)

	result, err = s.storage.ListWebhookEvent(ctx, tx, storage.ListEventRequest{
		Limit:    10,
		Statuses: []string{"failed"},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, result.Total)
	s.Require().Equal(1, len(result.Records))
	s.Assert().Equal("evt_3", result.Records[0].ID)

	result, err = s.storage.ListWebhookEvent(ctx, tx, storage.ListEventRequest{Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Assert().Equal(3, result.Total)
	s.Require().Equal(1, len(result.Records))
	s.Assert().Equal("evt_2", result.Records[0].ID)
}
