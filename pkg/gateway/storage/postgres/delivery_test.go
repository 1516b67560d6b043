package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/storage/postgres"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type DeliveryStorageTestSuite struct {
	BaseTestSuite
	storage storage.DeliveryStorage
}

func TestDeliveryStorage(t *testing.T) {
	suite.Run(t, new(DeliveryStorageTestSuite))
}

func (s *DeliveryStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/delivery"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *DeliveryStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *DeliveryStorageTestSuite) claim(now int64, leaseSeconds, batchSize int) []storage.ClaimedDelivery {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	claimed, err := s.storage.ClaimDueDeliveries(ctx, tx, now, leaseSeconds, batchSize)
	s.Require().NoError(err)
	s.Require().NoError(tx.Commit(ctx))
	return claimed
}

func (s *DeliveryStorageTestSuite) TestAddWebhookDelivery() {
	deliveries := []model.WebhookDelivery{
		{
			ID:          "dlv_new_1",
			ConfigID:    "cfg_1",
			EventID:     "evt_1",
			EventType:   "stripe.charge.succeeded",
			Status:      model.DeliveryStatusPending,
			MaxAttempts: 5,
			NextRetryAt: 1713000100,
			Payload:     []byte(`{"event_id":"evt_1"}`),
			CreatedAt:   1713000100,
			UpdatedAt:   1713000100,
		},
		{
			ID:          "dlv_new_2",
			ConfigID:    "cfg_2",
			EventID:     "evt_1",
			EventType:   "stripe.charge.succeeded",
			Status:      model.DeliveryStatusPending,
			MaxAttempts: 5,
			NextRetryAt: 1713000100,
			Payload:     []byte(`{"event_id":"evt_1"}`),
			CreatedAt:   1713000100,
			UpdatedAt:   1713000100,
		},
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.AddWebhookDelivery(ctx, tx, deliveries...))

	for _, delivery := range deliveries {
		stored, err := s.storage.GetWebhookDelivery(ctx, tx, "", delivery.ID)
		s.Require().NoError(err)
		s.Assert().Equal(delivery, stored)
	}
}

func (s *DeliveryStorageTestSuite) TestGetWebhookDeliveryNotFound() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = s.storage.GetWebhookDelivery(ctx, tx, "", "no_such_delivery")
	s.Require().ErrorIs(err, model.ErrDeliveryNotFound)
}

func (s *DeliveryStorageTestSuite) TestGetWebhookDeliveryTenantScope() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	// dlv_1 belongs to cfg_1 which is owned by tenant_1.
	stored, err := s.storage.GetWebhookDelivery(ctx, tx, "tenant_1", "dlv_1")
	s.Require().NoError(err)
	s.Assert().Equal("dlv_1", stored.ID)

	_, err = s.storage.GetWebhookDelivery(ctx, tx, "tenant_2", "dlv_1")
	s.Require().ErrorIs(err, model.ErrDeliveryNotFound)
}

func (s *DeliveryStorageTestSuite) TestClaimDueDeliveries() {
	now := int64(1713001000)

	claimed := s.claim(now, 300, 10)

	// cfg_1 has two due deliveries but only the older one is claimed.
	// cfg_2's delivery is not due yet. cfg_3's is dead lettered.
	ids := lo.Map(claimed, func(c storage.ClaimedDelivery, _ int) string { return c.Delivery.ID })
	s.Require().Equal([]string{"dlv_1"}, ids)
	s.Assert().Equal(model.DeliveryStatusDelivering, claimed[0].Delivery.Status)
	s.Assert().Equal("https://tenant1.example.com/hook", claimed[0].Url)
	s.Assert().Equal("whsec_cfg1", claimed[0].Secret)
	s.Assert().True(claimed[0].Active)

	// The config now has a live claim, so its second due delivery stays put.
	s.Require().Empty(s.claim(now, 300, 10))

	// Once the lease expires the stuck claim is reclaimed.
	reclaimed := s.claim(now+400, 300, 10)
	s.Require().Equal(1, len(reclaimed))
	s.Assert().Equal("dlv_1", reclaimed[0].Delivery.ID)
}

func (s *DeliveryStorageTestSuite) TestClaimDueDeliveriesForInactiveConfig() {
	// cfg_2 is due at 1713002000 and inactive. The claim reports Active false
	// so the worker can abandon it.
	claimed := s.claim(1713002100, 300, 10)

	byID := lo.KeyBy(claimed, func(c storage.ClaimedDelivery) string { return c.Delivery.ID })
	record, ok := byID["dlv_3"]
	s.Require().True(ok)
	s.Assert().False(record.Active)
}

func (s *DeliveryStorageTestSuite) TestSetWebhookDeliveryResult() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	req := storage.SetDeliveryResultRequest{
		ID:             "dlv_1",
		Status:         model.DeliveryStatusFailed,
		ResponseStatus: 500,
		AttemptCount:   1,
		NextRetryAt:    1713001060,
		LastError:      "unexpected response status 500",
		UpdatedAt:      1713001030,
	}
	s.Require().NoError(s.storage.SetWebhookDeliveryResult(ctx, tx, req))

	stored, err := s.storage.GetWebhookDelivery(ctx, tx, "", "dlv_1")
	s.Require().NoError(err)
	s.Assert().Equal(model.DeliveryStatusFailed, stored.Status)
	s.Assert().Equal(500, stored.ResponseStatus)
	s.Assert().Equal(1, stored.AttemptCount)
	s.Assert().Equal(int64(1713001060), stored.NextRetryAt)
	s.Assert().Equal("unexpected response status 500", stored.LastError)
	s.Assert().False(stored.DeadLettered)

	err = s.storage.SetWebhookDeliveryResult(ctx, tx, storage.SetDeliveryResultRequest{ID: "no_such_delivery"})
	s.Require().ErrorIs(err, model.ErrDeliveryNotFound)
}

func (s *DeliveryStorageTestSuite) TestResetWebhookDelivery() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.ResetWebhookDelivery(ctx, tx, 1713002000, "dlv_4"))

	stored, err := s.storage.GetWebhookDelivery(ctx, tx, "", "dlv_4")
	s.Require().NoError(err)
	s.Assert().Equal(model.DeliveryStatusPending, stored.Status)
	s.Assert().False(stored.DeadLettered)
	s.Assert().Equal(0, stored.AttemptCount)
	s.Assert().Equal(int64(1713002000), stored.NextRetryAt)
	s.Assert().Empty(stored.LastError)
}

func (s *DeliveryStorageTestSuite) TestAbandonDeliveriesForConfig() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.AbandonDeliveriesForConfig(ctx, tx, 1713002000, "cfg_1"))

	for _, id := range []string{"dlv_1", "dlv_2"} {
		stored, err := s.storage.GetWebhookDelivery(ctx, tx, "", id)
		s.Require().NoError(err)
		s.Assert().Equal(model.DeliveryStatusAbandoned, stored.Status)
	}

	// Dead lettered rows are terminal and stay untouched.
	s.Require().NoError(s.storage.AbandonDeliveriesForConfig(ctx, tx, 1713002000, "cfg_3"))
	stored, err := s.storage.GetWebhookDelivery(ctx, tx, "", "dlv_4")
	s.Require().NoError(err)
	s.Assert().Equal(model.DeliveryStatusFailed, stored.Status)
	s.Assert().True(stored.DeadLettered)
}

func (s *DeliveryStorageTestSuite) TestListWebhookDelivery() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := s.storage.ListWebhookDelivery(ctx, tx, storage.ListDeliveryRequest{Limit: 10})
	s.Require().NoError(err)
	s.Assert().Equal(4, result.Total)

	result, err = s.storage.ListWebhookDelivery(ctx, tx, storage.ListDeliveryRequest{
		Limit:    10,
		ConfigID: "cfg_1",
	})
	s.Require().NoError(err)
	s.Assert().Equal(2, result.Total)

	result, err = s.storage.ListWebhookDelivery(ctx, tx, storage.ListDeliveryRequest{
		Limit:        10,
		DeadLettered: lo.ToPtr(true),
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, result.Total)
	s.Require().Equal(1, len(result.Records))
	s.Assert().Equal("dlv_4", result.Records[0].ID)

	result, err = s.storage.ListWebhookDelivery(ctx, tx, storage.ListDeliveryRequest{
		Limit:    10,
		Statuses: []string{"pending"},
		EventID:  "evt_1",
	})
	s.Require().NoError(err)
	s.Assert().Equal(2, result.Total)
}

func (s *DeliveryStorageTestSuite) TestListWebhookDeliveryTenantScope() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	// tenant_1 owns cfg_1 and cfg_2, tenant_2 owns cfg_3 with only dlv_4.
	result, err := s.storage.ListWebhookDelivery(ctx, tx, storage.ListDeliveryRequest{
		Limit:    10,
		TenantID: "tenant_1",
	})
	s.Require().NoError(err)
	s.Assert().Equal(3, result.Total)

	result, err = s.storage.ListWebhookDelivery(ctx, tx, storage.ListDeliveryRequest{
		Limit:    10,
		TenantID: "tenant_2",
	})
	s.Require().NoError(err)
	s.Require().Equal(1, len(result.Records))
	s.Assert().Equal("dlv_4", result.Records[0].ID)

	// A tenant filter combined with another tenant's config matches nothing.
	result, err = s.storage.ListWebhookDelivery(ctx, tx, storage.ListDeliveryRequest{
		Limit:    10,
		TenantID: "tenant_2",
		ConfigID: "cfg_1",
	})
	s.Require().NoError(err)
	s.Assert().Equal(0, result.Total)
	s.Assert().Empty(result.Records)
}
