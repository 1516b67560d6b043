package subscription_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/subscription"
	"github.com/hookworks/hookd/pkg/util"
	mock_storage "github.com/hookworks/hookd/test/mock/gateway/storage"
	"github.com/stretchr/testify/suite"
)

type ConfigControllerTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	configStorage   *mock_storage.MockConfigStorage
	deliveryStorage *mock_storage.MockDeliveryStorage
	tx              *mock_storage.MockTx
	controller      subscription.ConfigController
}

func TestConfigController(t *testing.T) {
	suite.Run(t, new(ConfigControllerTestSuite))
}

func (s *ConfigControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.configStorage = mock_storage.NewMockConfigStorage(s.ctrl)
	s.deliveryStorage = mock_storage.NewMockDeliveryStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.controller = subscription.NewConfigController(s.configStorage, s.deliveryStorage)
}

func (s *ConfigControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ConfigControllerTestSuite) expectWriteTx() {
	s.configStorage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func (s *ConfigControllerTestSuite) expectReadTx() {
	s.configStorage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func (s *ConfigControllerTestSuite) TestCreateConfig() {
	ts := time.Now().Unix()
	req := subscription.CreateConfigRequest{
		Requester:  "requester",
		TenantID:   "tenant-1",
		Url:        "https://example.com/notify",
		EventTypes: []string{"stripe.invoice.*", "paypal.PAYMENT.CAPTURE.COMPLETED"},
	}

	var stored model.WebhookConfig
	s.expectWriteTx()
	s.configStorage.EXPECT().
		PutWebhookConfig(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, config model.WebhookConfig) error {
			stored = config
			return nil
		})

	config, err := s.controller.Create(s.ctx, ts, req)
	s.Require().NoError(err)

	s.NotEmpty(config.ID)
	s.Equal("tenant-1", config.TenantID)
	s.Equal(req.Url, config.Url)
	s.Equal(req.EventTypes, config.EventTypes)
	s.True(config.Active)
	s.True(strings.HasPrefix(config.Secret, "whsec_"))
	s.Equal(ts, config.CreatedAt)
	s.Equal("requester", config.CreatedBy)

	s.Equal(config.ID, stored.ID)
	s.Equal(config.Secret, stored.Secret)
}

func (s *ConfigControllerTestSuite) TestCreateConfigInactive() {
	ts := time.Now().Unix()
	req := subscription.CreateConfigRequest{
		Requester:  "requester",
		TenantID:   "tenant-1",
		Url:        "https://example.com/notify",
		EventTypes: []string{"stripe.*"},
		Active:     util.Ptr(false),
	}

	s.expectWriteTx()
	s.configStorage.EXPECT().PutWebhookConfig(gomock.Any(), s.tx, gomock.Any()).Return(nil)

	config, err := s.controller.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.False(config.Active)
}

func (s *ConfigControllerTestSuite) TestCreateConfigValidation() {
	ts := time.Now().Unix()

	_, err := s.controller.Create(s.ctx, ts, subscription.CreateConfigRequest{
		Requester: "requester",
		TenantID:  "tenant-1",
		Url:       "not a url",
	})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.controller.Create(s.ctx, ts, subscription.CreateConfigRequest{
		Requester:  "requester",
		TenantID:   "tenant-1",
		Url:        "https://example.com/notify",
		EventTypes: nil,
	})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ConfigControllerTestSuite) TestGetConfigBlanksSecret() {
	existing := model.WebhookConfig{ID: "cfg-1", TenantID: "tenant-1", Secret: "whsec_abc"}

	s.expectReadTx()
	s.configStorage.EXPECT().GetWebhookConfig(gomock.Any(), s.tx, "cfg-1").Return(existing, nil)

	config, err := s.controller.Get(s.ctx, "tenant-1", "cfg-1")
	s.Require().NoError(err)
	s.Empty(config.Secret)
	s.Equal("cfg-1", config.ID)
}

func (s *ConfigControllerTestSuite) TestGetConfigWrongTenant() {
	existing := model.WebhookConfig{ID: "cfg-1", TenantID: "tenant-1"}

	s.expectReadTx()
	s.configStorage.EXPECT().GetWebhookConfig(gomock.Any(), s.tx, "cfg-1").Return(existing, nil)

	_, err := s.controller.Get(s.ctx, "tenant-2", "cfg-1")
	s.Require().ErrorIs(err, model.ErrConfigNotFound)
}

func (s *ConfigControllerTestSuite) TestListConfigBlanksSecrets() {
	s.expectReadTx()
	s.configStorage.EXPECT().
		ListWebhookConfig(gomock.Any(), s.tx, storage.ListConfigRequest{Limit: 10, TenantID: "tenant-1"}).
		Return(storage.ListConfigResult{
			Total: 2,
			Records: []model.WebhookConfig{
				{ID: "cfg-1", TenantID: "tenant-1", Secret: "whsec_a"},
				{ID: "cfg-2", TenantID: "tenant-1", Secret: "whsec_b"},
			},
		}, nil)

	result, err := s.controller.List(s.ctx, subscription.ListConfigRequest{Limit: 10, TenantID: "tenant-1"})
	s.Require().NoError(err)
	s.Equal(2, result.Total)
	for _, config := range result.Records {
		s.Empty(config.Secret)
	}
}

func (s *ConfigControllerTestSuite) TestUpdateConfigKeepsSecret() {
	ts := time.Now().Unix()
	existing := model.WebhookConfig{
		ID:         "cfg-1",
		TenantID:   "tenant-1",
		Url:        "https://old.example.com",
		EventTypes: []string{"stripe.*"},
		Active:     true,
		Secret:     "whsec_keep",
		CreatedAt:  ts - 100,
	}

	var stored model.WebhookConfig
	s.expectWriteTx()
	s.configStorage.EXPECT().GetWebhookConfig(gomock.Any(), s.tx, "cfg-1").Return(existing, nil)
	s.configStorage.EXPECT().
		PutWebhookConfig(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, config model.WebhookConfig) error {
			stored = config
			return nil
		})

	config, err := s.controller.Update(s.ctx, ts, subscription.UpdateConfigRequest{
		ID:         "cfg-1",
		Requester:  "requester",
		TenantID:   "tenant-1",
		Url:        "https://new.example.com",
		EventTypes: []string{"paypal.*"},
		Active:     util.Ptr(false),
	})
	s.Require().NoError(err)

	s.Equal("whsec_keep", stored.Secret)
	s.Equal("https://new.example.com", stored.Url)
	s.Equal([]string{"paypal.*"}, stored.EventTypes)
	s.False(stored.Active)
	s.Equal(ts, stored.UpdatedAt)
	s.Empty(config.Secret)
}

func (s *ConfigControllerTestSuite) TestRotateSecret() {
	ts := time.Now().Unix()
	existing := model.WebhookConfig{ID: "cfg-1", TenantID: "tenant-1", Secret: "whsec_old"}

	var stored model.WebhookConfig
	s.expectWriteTx()
	s.configStorage.EXPECT().GetWebhookConfig(gomock.Any(), s.tx, "cfg-1").Return(existing, nil)
	s.configStorage.EXPECT().
		PutWebhookConfig(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, config model.WebhookConfig) error {
			stored = config
			return nil
		})

	config, err := s.controller.RotateSecret(s.ctx, ts, subscription.RotateSecretRequest{
		ID:        "cfg-1",
		Requester: "requester",
		TenantID:  "tenant-1",
	})
	s.Require().NoError(err)

	s.NotEqual("whsec_old", config.Secret)
	s.True(strings.HasPrefix(config.Secret, "whsec_"))
	s.Equal(config.Secret, stored.Secret)
}

func (s *ConfigControllerTestSuite) TestDeleteConfigAbandonsDeliveries() {
	ts := time.Now().Unix()
	existing := model.WebhookConfig{ID: "cfg-1", TenantID: "tenant-1", Active: true}

	var stored model.WebhookConfig
	s.expectWriteTx()
	s.configStorage.EXPECT().GetWebhookConfig(gomock.Any(), s.tx, "cfg-1").Return(existing, nil)
	s.configStorage.EXPECT().
		PutWebhookConfig(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, config model.WebhookConfig) error {
			stored = config
			return nil
		})
	s.deliveryStorage.EXPECT().AbandonDeliveriesForConfig(gomock.Any(), s.tx, ts, "cfg-1").Return(nil)

	err := s.controller.Delete(s.ctx, ts, subscription.DeleteConfigRequest{
		ID:        "cfg-1",
		Requester: "requester",
		TenantID:  "tenant-1",
	})
	s.Require().NoError(err)

	s.True(stored.Deleted)
	s.False(stored.Active)
}
