package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/storage/postgres"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
)

type AuthStorageTestSuite struct {
	BaseTestSuite
	storage storage.AuthStorage
}

func TestAuthStorage(t *testing.T) {
	suite.Run(t, new(AuthStorageTestSuite))
}

func (s *AuthStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/auth"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *AuthStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *AuthStorageTestSuite) TestAddTenant() {
	tenant := storage.Tenant{
		ID:        "tenant_new",
		Name:      "New Tenant",
		Status:    "active",
		CreatedAt: 1713000100,
		UpdatedAt: 1713000100,
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.AddTenant(ctx, tx, tenant))

	stored, err := s.storage.GetTenant(ctx, tx, tenant.ID)
	s.Require().NoError(err)
	s.Assert().Equal(tenant, stored)
}

func (s *AuthStorageTestSuite) TestGetTenantNotFound() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = s.storage.GetTenant(ctx, tx, "no_such_tenant")
	s.Require().ErrorIs(err, sql.ErrNoRows)
}

func (s *AuthStorageTestSuite) TestAddAPIKey() {
	key := storage.APIKeyRecord{
		ID:         "key_new",
		HashString: "key_new:$2a$10$hash",
		TenantID:   "tenant_1",
		Scopes:     []string{"all"},
		Status:     "active",
		CreatedAt:  1713000100,
		UpdatedAt:  1713000100,
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.AddAPIKey(ctx, tx, key))

	storedKey, storedTenant, err := s.storage.GetAPIKey(ctx, tx, key.ID)
	s.Require().NoError(err)
	s.Assert().Equal(key, storedKey)
	s.Assert().Equal("tenant_1", storedTenant.ID)
}

func (s *AuthStorageTestSuite) TestGetAPIKeyNotFound() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, _, err = s.storage.GetAPIKey(ctx, tx, "no_such_key")
	s.Require().ErrorIs(err, sql.ErrNoRows)
}

func (s *AuthStorageTestSuite) TestRevokeAPIKey() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.RevokeAPIKey(ctx, tx, 1713000200, "key_1"))

	storedKey, _, err := s.storage.GetAPIKey(ctx, tx, "key_1")
	s.Require().NoError(err)
	s.Assert().Equal("revoked", storedKey.Status)
	s.Assert().Equal(int64(1713000200), storedKey.UpdatedAt)
}
