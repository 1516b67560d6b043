package delivery_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/hookworks/hookd/pkg/gateway/delivery"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/verifier"
	mock_storage "github.com/hookworks/hookd/test/mock/gateway/storage"
	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	deliveryStorage *mock_storage.MockDeliveryStorage
	configStorage   *mock_storage.MockConfigStorage
	tx              *mock_storage.MockTx
	now             time.Time
	scheduler       *delivery.Scheduler
}

func TestScheduler(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.deliveryStorage = mock_storage.NewMockDeliveryStorage(s.ctrl)
	s.configStorage = mock_storage.NewMockConfigStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.now = time.Unix(1714000000, 0)

	scheduler, err := delivery.NewSchedulerWithConfig(
		delivery.Config{
			BatchSize:   10,
			MaxAttempts: 3,
			Workers:     2,
		},
		delivery.WithDeliveryStorage(s.deliveryStorage),
		delivery.WithConfigStorage(s.configStorage),
		delivery.WithNowFunc(func() time.Time { return s.now }),
		delivery.WithRandFunc(func() float64 { return 0.5 }),
		delivery.WithBackoff(30*time.Second, time.Hour, 0.2),
	)
	s.Require().NoError(err)
	s.scheduler = scheduler
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SchedulerTestSuite) TestEnqueueFansOutToSubscribedConfigs() {
	event := model.WebhookEvent{
		ID:        "evt-1",
		Provider:  model.ProviderStripe,
		EventType: "invoice.paid",
		Payload:   []byte(`{"id":"in_1"}`),
	}

	configs := []model.WebhookConfig{
		{ID: "cfg-1", Url: "https://a.example.com", EventTypes: []string{"stripe.invoice.paid"}, Active: true},
		{ID: "cfg-2", Url: "https://b.example.com", EventTypes: []string{"stripe.*"}, Active: true},
		{ID: "cfg-3", Url: "https://c.example.com", EventTypes: []string{"paypal.*"}, Active: true},
	}

	s.configStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	s.configStorage.EXPECT().
		ListWebhookConfig(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, req storage.ListConfigRequest) (storage.ListConfigResult, error) {
			s.True(req.ActiveOnly)
			return storage.ListConfigResult{Total: len(configs), Records: configs}, nil
		})

	var added []model.WebhookDelivery
	s.deliveryStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.deliveryStorage.EXPECT().
		AddWebhookDelivery(gomock.Any(), s.tx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, deliveries ...model.WebhookDelivery) error {
			added = deliveries
			return nil
		})

	s.Require().NoError(s.scheduler.Enqueue(s.ctx, event))
	s.Require().Len(added, 2)
	s.Equal("cfg-1", added[0].ConfigID)
	s.Equal("cfg-2", added[1].ConfigID)
	for _, d := range added {
		s.Equal("evt-1", d.EventID)
		s.Equal("stripe.invoice.paid", d.EventType)
		s.Equal(model.DeliveryStatusPending, d.Status)
		s.Equal(3, d.MaxAttempts)
		s.Equal(s.now.Unix(), d.NextRetryAt)

		var payload model.DeliveryPayload
		s.Require().NoError(json.Unmarshal(d.Payload, &payload))
		s.Equal("evt-1", payload.EventID)
		s.Equal("stripe.invoice.paid", payload.EventType)
		s.JSONEq(`{"id":"in_1"}`, string(payload.Data))
	}
}

func (s *SchedulerTestSuite) TestEnqueueNoSubscribers() {
	event := model.WebhookEvent{ID: "evt-1", Provider: model.ProviderPayPal, EventType: "PAYMENT.CAPTURE.COMPLETED"}

	s.configStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	s.configStorage.EXPECT().
		ListWebhookConfig(gomock.Any(), s.tx, gomock.Any()).
		Return(storage.ListConfigResult{}, nil)

	s.Require().NoError(s.scheduler.Enqueue(s.ctx, event))
}

func (s *SchedulerTestSuite) claimReturning(claimed ...storage.ClaimedDelivery) {
	s.deliveryStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	s.deliveryStorage.EXPECT().
		ClaimDueDeliveries(gomock.Any(), s.tx, s.now.Unix(), gomock.Any(), 10).
		Return(claimed, nil)
}

func (s *SchedulerTestSuite) expectResult() *storage.SetDeliveryResultRequest {
	result := &storage.SetDeliveryResultRequest{}
	s.deliveryStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.deliveryStorage.EXPECT().
		SetWebhookDeliveryResult(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, req storage.SetDeliveryResultRequest) error {
			*result = req
			return nil
		})
	return result
}

func (s *SchedulerTestSuite) TestProcessBatchSuccess() {
	payload := []byte(`{"event_id":"evt-1","event_type":"stripe.invoice.paid","data":{"id":"in_1"},"timestamp":1714000000}`)
	secret := "whsec_out"

	var receivedSig, receivedTS string
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedSig = r.Header.Get(delivery.SignatureHeader)
		receivedTS = r.Header.Get(delivery.TimestampHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer endpoint.Close()

	s.claimReturning(storage.ClaimedDelivery{
		Delivery: model.WebhookDelivery{ID: "dlv-1", EventID: "evt-1", EventType: "stripe.invoice.paid", AttemptCount: 0, MaxAttempts: 3, Payload: payload},
		Url:      endpoint.URL,
		Secret:   secret,
		Active:   true,
	})
	result := s.expectResult()

	processed, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, processed)

	s.Equal("dlv-1", result.ID)
	s.Equal(model.DeliveryStatusSuccess, result.Status)
	s.Equal(http.StatusOK, result.ResponseStatus)
	s.Equal(1, result.AttemptCount)
	s.False(result.DeadLettered)
	s.Zero(result.NextRetryAt)

	s.Equal("1714000000", receivedTS)
	s.Equal("v1="+verifier.SignPayload(secret, s.now.Unix(), payload), receivedSig)
}

func (s *SchedulerTestSuite) TestProcessBatchRetryableFailure() {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer endpoint.Close()

	s.claimReturning(storage.ClaimedDelivery{
		Delivery: model.WebhookDelivery{ID: "dlv-1", EventID: "evt-1", EventType: "stripe.invoice.paid", AttemptCount: 0, MaxAttempts: 3, Payload: []byte(`{}`)},
		Url:      endpoint.URL,
		Secret:   "secret",
		Active:   true,
	})
	result := s.expectResult()

	_, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.DeliveryStatusFailed, result.Status)
	s.Equal(http.StatusInternalServerError, result.ResponseStatus)
	s.Equal(1, result.AttemptCount)
	s.False(result.DeadLettered)
	s.Equal(s.now.Unix()+30, result.NextRetryAt)
	s.Contains(result.LastError, "500")
}

func (s *SchedulerTestSuite) TestProcessBatchPermanentFailure() {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer endpoint.Close()

	s.claimReturning(storage.ClaimedDelivery{
		Delivery: model.WebhookDelivery{ID: "dlv-1", EventID: "evt-1", EventType: "stripe.invoice.paid", AttemptCount: 0, MaxAttempts: 3, Payload: []byte(`{}`)},
		Url:      endpoint.URL,
		Secret:   "secret",
		Active:   true,
	})
	result := s.expectResult()

	_, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.DeliveryStatusFailed, result.Status)
	s.True(result.DeadLettered)
	s.Zero(result.NextRetryAt)
}

func (s *SchedulerTestSuite) TestProcessBatchTooManyRequestsIsRetryable() {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer endpoint.Close()

	s.claimReturning(storage.ClaimedDelivery{
		Delivery: model.WebhookDelivery{ID: "dlv-1", EventID: "evt-1", EventType: "stripe.invoice.paid", AttemptCount: 0, MaxAttempts: 3, Payload: []byte(`{}`)},
		Url:      endpoint.URL,
		Secret:   "secret",
		Active:   true,
	})
	result := s.expectResult()

	_, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.DeliveryStatusFailed, result.Status)
	s.False(result.DeadLettered)
	s.NotZero(result.NextRetryAt)
}

func (s *SchedulerTestSuite) TestProcessBatchExhaustsAttempts() {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer endpoint.Close()

	s.claimReturning(storage.ClaimedDelivery{
		Delivery: model.WebhookDelivery{ID: "dlv-1", EventID: "evt-1", EventType: "stripe.invoice.paid", AttemptCount: 2, MaxAttempts: 3, Payload: []byte(`{}`)},
		Url:      endpoint.URL,
		Secret:   "secret",
		Active:   true,
	})
	result := s.expectResult()

	_, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)

	s.Equal(3, result.AttemptCount)
	s.True(result.DeadLettered)
	s.Zero(result.NextRetryAt)
}

func (s *SchedulerTestSuite) TestProcessBatchUnreachableEndpoint() {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint.Close()

	s.claimReturning(storage.ClaimedDelivery{
		Delivery: model.WebhookDelivery{ID: "dlv-1", EventID: "evt-1", EventType: "stripe.invoice.paid", AttemptCount: 0, MaxAttempts: 3, Payload: []byte(`{}`)},
		Url:      endpoint.URL,
		Secret:   "secret",
		Active:   true,
	})
	result := s.expectResult()

	_, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.DeliveryStatusFailed, result.Status)
	s.Zero(result.ResponseStatus)
	s.False(result.DeadLettered)
	s.NotZero(result.NextRetryAt)
	s.NotEmpty(result.LastError)
}

func (s *SchedulerTestSuite) TestProcessBatchInactiveConfigAbandons() {
	s.claimReturning(storage.ClaimedDelivery{
		Delivery: model.WebhookDelivery{ID: "dlv-1", EventID: "evt-1", EventType: "stripe.invoice.paid", AttemptCount: 1, MaxAttempts: 3, Payload: []byte(`{}`)},
		Url:      "https://gone.example.com",
		Secret:   "secret",
		Active:   false,
	})
	result := s.expectResult()

	_, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.DeliveryStatusAbandoned, result.Status)
	s.Equal(1, result.AttemptCount)
	s.Zero(result.NextRetryAt)
}

func (s *SchedulerTestSuite) TestProcessBatchNothingDue() {
	s.claimReturning()

	processed, err := s.scheduler.ProcessBatch(s.ctx)
	s.Require().NoError(err)
	s.Zero(processed)
}
