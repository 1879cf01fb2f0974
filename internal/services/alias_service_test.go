package services

import (
	"context"
	"testing"

	"ledger-bot/internal/database"
	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
)

type AliasServiceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
	user  *models.User
}

func (s *AliasServiceTestSuite) SetupTest() {
	s.stack = newTestStack(s.T())
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.stack.db, int64(gofakeit.Number(1, 1_000_000_000)))
}

func TestAliasServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AliasServiceTestSuite))
}

func (s *AliasServiceTestSuite) TestCreateAlias_StoresCanonicalTitle() {
	database.CreateTestAccount(s.T(), s.stack.db, s.user.ID, "Тинькофф Блэк", "0")

	alias, err := s.stack.aliases.CreateAlias(s.ctx, s.user.ID, "Блэк", "тинькофф блэк")

	s.Require().NoError(err)
	s.Equal("Тинькофф Блэк", alias.Target)
	s.Equal("блэк", alias.Alias)

	account, err := s.stack.resolver.ResolveAccount(s.ctx, s.user.ID, "БЛЭК")
	s.Require().NoError(err)
	s.Equal("Тинькофф Блэк", account.Title)
}

func (s *AliasServiceTestSuite) TestCreateAlias_PrefersCategory() {
	database.CreateTestAccount(s.T(), s.stack.db, s.user.ID, "Кафе", "0")
	database.CreateTestCategory(s.T(), s.stack.db, s.user.ID, "Кафе")

	alias, err := s.stack.aliases.CreateAlias(s.ctx, s.user.ID, "кф", "Кафе")
	s.Require().NoError(err)

	target, err := s.stack.resolver.ResolveDescription(s.ctx, s.user.ID, alias.Alias)
	s.Require().NoError(err)
	s.Equal(TargetCategory, target.Kind)
}

func (s *AliasServiceTestSuite) TestCreateAlias_Errors() {
	database.CreateTestCategory(s.T(), s.stack.db, s.user.ID, "Еда")

	_, err := s.stack.aliases.CreateAlias(s.ctx, s.user.ID, "ед", "Несуществующее")
	s.True(ledgererrors.HasCode(err, ledgererrors.AliasNotFound), "got %v", err)

	_, err = s.stack.aliases.CreateAlias(s.ctx, s.user.ID, "ед", "Еда")
	s.Require().NoError(err)
	_, err = s.stack.aliases.CreateAlias(s.ctx, s.user.ID, "ЕД", "Еда")
	s.True(ledgererrors.HasCode(err, ledgererrors.AliasTaken), "got %v", err)

	_, err = s.stack.aliases.CreateAlias(s.ctx, s.user.ID, "два слова", "Еда")
	s.True(ledgererrors.HasCode(err, ledgererrors.ValidationInvalidFormat), "got %v", err)
}

func (s *AliasServiceTestSuite) TestListAndDeleteAlias() {
	database.CreateTestCategory(s.T(), s.stack.db, s.user.ID, "Еда")
	created, err := s.stack.aliases.CreateAlias(s.ctx, s.user.ID, "ед", "Еда")
	s.Require().NoError(err)

	aliases, err := s.stack.aliases.ListAliases(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(aliases, 1)

	other := database.CreateTestUser(s.T(), s.stack.db, int64(gofakeit.Number(1, 1_000_000_000)))
	err = s.stack.aliases.DeleteAlias(s.ctx, other.ID, created.ID)
	s.True(ledgererrors.HasCode(err, ledgererrors.AliasNotFound))

	s.Require().NoError(s.stack.aliases.DeleteAlias(s.ctx, s.user.ID, created.ID))
	aliases, err = s.stack.aliases.ListAliases(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Empty(aliases)
}
