package services

import (
	"context"
	"testing"

	"ledger-bot/internal/database"
	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
	user  *models.User
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.stack = newTestStack(s.T())
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.stack.db, int64(gofakeit.Number(1, 1_000_000_000)))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccount() {
	account, err := s.stack.accounts.CreateAccount(s.ctx, s.user.ID, "Наличные", "RUB", decimal.RequireFromString("10.005"))

	s.Require().NoError(err)
	s.Equal("10.01", account.Balance.StringFixed(2))
	s.True(database.AccountBalance(s.T(), s.stack.db, account.ID).Equal(decimal.RequireFromString("10.01")))
}

func (s *AccountServiceTestSuite) TestCreateAccount_Errors() {
	_, err := s.stack.accounts.CreateAccount(s.ctx, s.user.ID, "Наличные", "RUB", decimal.Zero)
	s.Require().NoError(err)

	_, err = s.stack.accounts.CreateAccount(s.ctx, s.user.ID, "наличные", "RUB", decimal.Zero)
	s.True(ledgererrors.HasCode(err, ledgererrors.AccountTitleTaken), "got %v", err)

	_, err = s.stack.accounts.CreateAccount(s.ctx, s.user.ID, "Копилка", "RUB", decimal.New(1, 14))
	s.True(ledgererrors.HasCode(err, ledgererrors.TooBigAmount), "got %v", err)

	_, err = s.stack.accounts.CreateAccount(s.ctx, s.user.ID, "", "RUB", decimal.Zero)
	s.True(ledgererrors.HasCode(err, ledgererrors.ValidationInvalidFormat), "got %v", err)
}

func (s *AccountServiceTestSuite) TestListAccounts_SortedByTitle() {
	for _, title := range []string{"Сбербанк", "альфа", "Ваучер"} {
		database.CreateTestAccount(s.T(), s.stack.db, s.user.ID, title, "0")
	}

	accounts, err := s.stack.accounts.ListAccounts(s.ctx, s.user.ID)

	s.Require().NoError(err)
	s.Require().Len(accounts, 3)
	s.Equal("альфа", accounts[0].Title)
	s.Equal("Ваучер", accounts[1].Title)
	s.Equal("Сбербанк", accounts[2].Title)
}

func (s *AccountServiceTestSuite) TestRenameAccount() {
	account := database.CreateTestAccount(s.T(), s.stack.db, s.user.ID, "Старый", "0")

	renamed, err := s.stack.accounts.RenameAccount(s.ctx, s.user.ID, account.ID, "Новый")

	s.Require().NoError(err)
	s.Equal("Новый", renamed.Title)
	resolved, err := s.stack.resolver.ResolveAccount(s.ctx, s.user.ID, "новый")
	s.Require().NoError(err)
	s.Equal(account.ID, resolved.ID)
}

func (s *AccountServiceTestSuite) TestRenameAccount_ForeignAccount() {
	other := database.CreateTestUser(s.T(), s.stack.db, int64(gofakeit.Number(1, 1_000_000_000)))
	account := database.CreateTestAccount(s.T(), s.stack.db, other.ID, "Чужой", "0")

	_, err := s.stack.accounts.RenameAccount(s.ctx, s.user.ID, account.ID, "Мой")

	s.True(ledgererrors.HasCode(err, ledgererrors.AccountNotFound))
}

func (s *AccountServiceTestSuite) TestDeleteAccount_RestoresCounterparts() {
	cash := database.CreateTestAccount(s.T(), s.stack.db, s.user.ID, "Наличные", "500")
	card := database.CreateTestAccount(s.T(), s.stack.db, s.user.ID, "Карта", "1000")
	database.CreateTestCategory(s.T(), s.stack.db, s.user.ID, "Еда")

	_, err := s.stack.commands.HandleCommand(s.ctx, s.user.ID, "300 карта наличные")
	s.Require().NoError(err)
	_, err = s.stack.commands.HandleCommand(s.ctx, s.user.ID, "-50 наличные еда")
	s.Require().NoError(err)

	s.Require().NoError(s.stack.accounts.DeleteAccount(s.ctx, s.user.ID, cash.ID))

	s.True(database.AccountBalance(s.T(), s.stack.db, card.ID).Equal(decimal.NewFromInt(1000)))
	entries, total, err := s.stack.history.ListEntries(s.ctx, s.user.ID, 0, 10)
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(entries)

	err = s.stack.accounts.DeleteAccount(s.ctx, s.user.ID, cash.ID)
	s.True(ledgererrors.HasCode(err, ledgererrors.AccountNotFound))
}

func (s *AccountServiceTestSuite) TestDeleteAccount_Unknown() {
	err := s.stack.accounts.DeleteAccount(s.ctx, s.user.ID, uuid.New())

	s.True(ledgererrors.HasCode(err, ledgererrors.AccountNotFound))
}
