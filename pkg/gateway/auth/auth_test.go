package auth_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hookworks/hookd/pkg/gateway/auth"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	mock_storage "github.com/hookworks/hookd/test/mock/gateway/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestAPIKeyStringRoundTrip(t *testing.T) {
	ks, err := auth.NewAPIKeyString()
	require.NoError(t, err)

	id, err := ks.ID()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 2, len(strings.Split(string(ks), ":")))

	hashed, err := ks.Hash()
	require.NoError(t, err)
	assert.NoError(t, auth.VerifyAPIKeyString(ks, hashed))

	other, err := auth.NewAPIKeyString()
	require.NoError(t, err)
	assert.ErrorIs(t, auth.VerifyAPIKeyString(other, hashed), auth.ErrMismatchAPIKey)
}

func TestAPIKeyStringMalformed(t *testing.T) {
	_, err := auth.APIKeyString("no-separator").ID()
	assert.ErrorIs(t, err, auth.ErrInvalidAPIKeyString)
}

func TestAdminToken(t *testing.T) {
	secret := []byte("admin-signing-secret")

	token, err := auth.IssueAdminToken(secret, "ops@example.com", time.Hour)
	require.NoError(t, err)

	verifier := auth.NewAdminTokenVerifier(secret)
	subject, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", subject)

	_, err = auth.NewAdminTokenVerifier([]byte("other-secret")).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidAdminToken)

	expired, err := auth.IssueAdminToken(secret, "ops@example.com", -time.Minute)
	require.NoError(t, err)
	_, err = verifier.Verify(expired)
	assert.ErrorIs(t, err, auth.ErrInvalidAdminToken)
}

type TenantManagerTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	storage *mock_storage.MockAuthStorage
	tx      *mock_storage.MockTx
	manager auth.TenantManager
}

func TestTenantManager(t *testing.T) {
	suite.Run(t, new(TenantManagerTestSuite))
}

func (s *TenantManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockAuthStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.manager = auth.NewTenantManager(s.storage)
}

func (s *TenantManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TenantManagerTestSuite) expectWriteTx() {
	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func (s *TenantManagerTestSuite) TestCreateTenant() {
	ts := time.Now().Unix()

	var stored storage.Tenant
	s.expectWriteTx()
	s.storage.EXPECT().
		AddTenant(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, tenant storage.Tenant) error {
			stored = tenant
			return nil
		})

	tenant, err := s.manager.CreateTenant(s.ctx, ts, auth.CreateTenantRequest{Requester: "ops", Name: "Acme"})
	s.Require().NoError(err)
	s.NotEmpty(tenant.ID)
	s.Equal("Acme", tenant.Name)
	s.Equal(string(auth.TenantStatusActive), tenant.Status)
	s.Equal(tenant, stored)
}

func (s *TenantManagerTestSuite) TestCreateTenantValidation() {
	_, err := s.manager.CreateTenant(s.ctx, time.Now().Unix(), auth.CreateTenantRequest{Requester: "ops"})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *TenantManagerTestSuite) TestCreateAPIKey() {
	ts := time.Now().Unix()
	tenant := storage.Tenant{ID: "tenant-1", Status: string(auth.TenantStatusActive)}

	var stored storage.APIKeyRecord
	s.expectWriteTx()
	s.storage.EXPECT().GetTenant(gomock.Any(), s.tx, "tenant-1").Return(tenant, nil)
	s.storage.EXPECT().
		AddAPIKey(gomock.Any(), s.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ storage.Tx, key storage.APIKeyRecord) error {
			stored = key
			return nil
		})

	record, apiKeyString, err := s.manager.CreateAPIKey(s.ctx, ts, auth.CreateAPIKeyRequest{Requester: "ops", TenantID: "tenant-1"})
	s.Require().NoError(err)

	id, err := apiKeyString.ID()
	s.Require().NoError(err)
	s.Equal(id, record.ID)
	s.Equal("tenant-1", record.TenantID)
	s.Equal([]string{string(auth.APIKeyScopeAll)}, record.Scopes)
	s.Equal(string(auth.APIKeyStatusActive), record.Status)
	s.NoError(auth.VerifyAPIKeyString(apiKeyString, auth.APIKeyHashedString(stored.HashString)))
}

func (s *TenantManagerTestSuite) TestCreateAPIKeyInactiveTenant() {
	tenant := storage.Tenant{ID: "tenant-1", Status: string(auth.TenantStatusInactive)}

	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	s.storage.EXPECT().GetTenant(gomock.Any(), s.tx, "tenant-1").Return(tenant, nil)

	_, _, err := s.manager.CreateAPIKey(s.ctx, time.Now().Unix(), auth.CreateAPIKeyRequest{Requester: "ops", TenantID: "tenant-1"})
	s.Require().ErrorIs(err, auth.ErrTenantInactive)
}

func (s *TenantManagerTestSuite) TestRevokeAPIKeyWrongTenant() {
	record := storage.APIKeyRecord{ID: "key-1", TenantID: "tenant-1"}

	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	s.storage.EXPECT().GetAPIKey(gomock.Any(), s.tx, "key-1").Return(record, storage.Tenant{}, nil)

	err := s.manager.RevokeAPIKey(s.ctx, time.Now().Unix(), auth.RevokeAPIKeyRequest{Requester: "ops", TenantID: "tenant-2", ID: "key-1"})
	s.Require().ErrorIs(err, auth.ErrAPIKeyNotFound)
}

type AuthenticatorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	storage       *mock_storage.MockAuthStorage
	tx            *mock_storage.MockTx
	authenticator auth.APIKeyAuthenticator
	apiKeyString  auth.APIKeyString
	record        storage.APIKeyRecord
	tenant        storage.Tenant
}

func TestAuthenticator(t *testing.T) {
	suite.Run(t, new(AuthenticatorTestSuite))
}

func (s *AuthenticatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockAuthStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.authenticator = auth.NewAPIKeyAuthenticator(s.storage)

	ks, err := auth.NewAPIKeyString()
	s.Require().NoError(err)
	id, err := ks.ID()
	s.Require().NoError(err)
	hashed, err := ks.Hash()
	s.Require().NoError(err)

	s.apiKeyString = ks
	s.record = storage.APIKeyRecord{
		ID:         id,
		HashString: string(hashed),
		TenantID:   "tenant-1",
		Scopes:     []string{string(auth.APIKeyScopeAll)},
		Status:     string(auth.APIKeyStatusActive),
	}
	s.tenant = storage.Tenant{ID: "tenant-1", Status: string(auth.TenantStatusActive)}
}

func (s *AuthenticatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthenticatorTestSuite) expectLookup(record storage.APIKeyRecord, tenant storage.Tenant, err error) {
	s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	s.storage.EXPECT().GetAPIKey(gomock.Any(), s.tx, gomock.Any()).Return(record, tenant, err)
}

func (s *AuthenticatorTestSuite) TestAuthenticate() {
	s.expectLookup(s.record, s.tenant, nil)

	record, tenant, err := s.authenticator.Authenticate(s.ctx, s.apiKeyString)
	s.Require().NoError(err)
	s.Equal(s.record.ID, record.ID)
	s.Equal("tenant-1", tenant.ID)
}

func (s *AuthenticatorTestSuite) TestAuthenticateNotFound() {
	s.expectLookup(storage.APIKeyRecord{}, storage.Tenant{}, sql.ErrNoRows)

	_, _, err := s.authenticator.Authenticate(s.ctx, s.apiKeyString)
	s.Require().ErrorIs(err, auth.ErrAPIKeyNotFound)
}

func (s *AuthenticatorTestSuite) TestAuthenticateRevoked() {
	s.record.Status = string(auth.APIKeyStatusRevoked)
	s.expectLookup(s.record, s.tenant, nil)

	_, _, err := s.authenticator.Authenticate(s.ctx, s.apiKeyString)
	s.Require().ErrorIs(err, auth.ErrRevokedAPIKey)
}

func (s *AuthenticatorTestSuite) TestAuthenticateInactiveTenant() {
	s.tenant.Status = string(auth.TenantStatusInactive)
	s.expectLookup(s.record, s.tenant, nil)

	_, _, err := s.authenticator.Authenticate(s.ctx, s.apiKeyString)
	s.Require().ErrorIs(err, auth.ErrTenantInactive)
}

func (s *AuthenticatorTestSuite) TestAuthenticateWrongSecret() {
	id, err := s.apiKeyString.ID()
	s.Require().NoError(err)
	s.expectLookup(s.record, s.tenant, nil)

	forged := auth.APIKeyString(id + ":wrong-secret")
	_, _, err = s.authenticator.Authenticate(s.ctx, forged)
	s.Require().ErrorIs(err, auth.ErrMismatchAPIKey)
}

func (s *AuthenticatorTestSuite) TestAuthenticateMalformedKey() {
	_, _, err := s.authenticator.Authenticate(s.ctx, auth.APIKeyString("garbage"))
	s.Require().ErrorIs(err, auth.ErrInvalidAPIKeyString)
}

func TestHasScope(t *testing.T) {
	scopes := []string{string(auth.APIKeyScopeRead)}
	assert.True(t, auth.HasScope(scopes, auth.APIKeyScopeRead))
	assert.False(t, auth.HasScope(scopes, auth.APIKeyScopeWrite))

	scopes = []string{string(auth.APIKeyScopeAll)}
	assert.True(t, auth.HasScope(scopes, auth.APIKeyScopeWrite))
}
