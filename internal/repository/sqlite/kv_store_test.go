package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/chronoquest/internal/repository"
	"github.com/vytor/chronoquest/internal/repository/sqlite"
	"github.com/vytor/chronoquest/internal/testutil"
)

type KeyValueStoreSuite struct {
	suite.Suite
	db    *sql.DB
	store repository.KeyValueStore
}

func (s *KeyValueStoreSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.store = sqlite.NewKeyValueStore(s.db)
}

func (s *KeyValueStoreSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *KeyValueStoreSuite) TestGetMissing() {
	value, ok, err := s.store.Get(context.Background(), "chronoStreak")
	s.Require().NoError(err)
	s.Assert().False(ok)
	s.Assert().Empty(value)
}

func (s *KeyValueStoreSuite) TestSetThenGet() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "chronoStreak", "5"))

	value, ok, err := s.store.Get(ctx, "chronoStreak")
	s.Require().NoError(err)
	s.Assert().True(ok)
	s.Assert().Equal("5", value)
}

func (s *KeyValueStoreSuite) TestSetOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "chronoStreak", "5"))
	s.Require().NoError(s.store.Set(ctx, "chronoStreak", "0"))

	value, _, err := s.store.Get(ctx, "chronoStreak")
	s.Require().NoError(err)
	s.Assert().Equal("0", value)

	var rows int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_store`).Scan(&rows)
	s.Require().NoError(err)
	s.Assert().Equal(1, rows)
}

func (s *KeyValueStoreSuite) TestKeysAreIndependent() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "a", "1"))
	s.Require().NoError(s.store.Set(ctx, "b", "2"))

	a, _, err := s.store.Get(ctx, "a")
	s.Require().NoError(err)
	b, _, err := s.store.Get(ctx, "b")
	s.Require().NoError(err)
	s.Assert().Equal("1", a)
	s.Assert().Equal("2", b)
}

func TestKeyValueStoreSuite(t *testing.T) {
	suite.Run(t, new(KeyValueStoreSuite))
}
