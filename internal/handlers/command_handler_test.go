package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ledger-bot/internal/dto"
	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/services"
	"ledger-bot/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CommandHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	commandService *service_mocks.MockCommandServiceInterface
	ledgerService  *service_mocks.MockLedgerServiceInterface
	handler        *CommandHandler
	echo           *echo.Echo
	userID         uuid.UUID
}

func (s *CommandHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.commandService = service_mocks.NewMockCommandServiceInterface(s.ctrl)
	s.ledgerService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewCommandHandler(s.commandService, s.ledgerService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *CommandHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommandHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommandHandlerSuite))
}

func (s *CommandHandlerSuite) TestHandleCommand_Entry() {
	entry := &models.Entry{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Title:     "доставка",
		Amount:    decimal.NewFromInt(-500),
	}
	s.commandService.EXPECT().
		HandleCommand(gomock.Any(), s.userID, "-0,5k блэк доставка").
		Return(&services.CommandResult{Kind: services.CommandEntry, Entry: entry}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/commands", dto.CommandRequest{Text: "-0,5k блэк доставка"}, s.userID)

	s.Require().NoError(s.handler.HandleCommand(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CommandResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("entry", resp.Kind)
	s.Require().NotNil(resp.Entry)
	s.Equal(entry.ID, resp.Entry.ID)
	s.Nil(resp.Transfer)
}

func (s *CommandHandlerSuite) TestHandleCommand_CommandError() {
	s.commandService.EXPECT().
		HandleCommand(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, ledgererrors.NewLedgerError(ledgererrors.CantFindAccount))

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/commands", dto.CommandRequest{Text: "+1 нигде еда"}, s.userID)

	s.Require().NoError(s.handler.HandleCommand(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	resp := decodeError(rec)
	s.Equal(string(ledgererrors.CantFindAccount), resp.Error.Code)
	s.Equal(ledgererrors.GetErrorMessage(ledgererrors.CantFindAccount), resp.Error.Message)
	s.Equal("test-trace", resp.Error.TraceID)
}

func (s *CommandHandlerSuite) TestHandleCommand_InfrastructureError() {
	s.commandService.EXPECT().
		HandleCommand(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, errors.New("pq: connection refused"))

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/commands", dto.CommandRequest{Text: "1 a b"}, s.userID)

	s.Require().NoError(s.handler.HandleCommand(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := decodeError(rec)
	s.Equal(string(ledgererrors.SystemInternalError), resp.Error.Code)
	s.NotContains(rec.Body.String(), "pq:")
}

func (s *CommandHandlerSuite) TestHandleCommand_EmptyText() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/commands", dto.CommandRequest{}, s.userID)

	s.Require().NoError(s.handler.HandleCommand(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CommandHandlerSuite) TestHandleCommand_Unauthenticated() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/commands", dto.CommandRequest{Text: gofakeit.Word()}, uuid.Nil)

	s.Require().NoError(s.handler.HandleCommand(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *CommandHandlerSuite) TestCommitDraft() {
	accountID, categoryID := uuid.New(), uuid.New()
	note := gofakeit.Sentence(3)

	s.ledgerService.EXPECT().
		CommitDraft(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, draft *services.EntryDraft) (*models.Entry, error) {
			s.Equal(services.DraftExpense, draft.Kind)
			s.True(draft.Amount.Equal(decimal.NewFromInt(1500)))
			s.Equal(note, draft.Title)
			s.Equal(accountID, draft.AccountID)
			s.Nil(draft.SubcategoryID)
			return &models.Entry{ID: uuid.New(), Amount: draft.SignedAmount(), Title: draft.Title}, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/drafts/commit", dto.CommitDraftRequest{
		Kind:       "expense",
		Amount:     "1,5к\n" + note,
		AccountID:  accountID.String(),
		CategoryID: categoryID.String(),
	}, s.userID)

	s.Require().NoError(s.handler.CommitDraft(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CommandResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("entry", resp.Kind)
	s.Equal("-1500", resp.Entry.Amount.String())
}

func (s *CommandHandlerSuite) TestCommitDraft_UnrecognizedAmount() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/drafts/commit", dto.CommitDraftRequest{
		Kind:       "income",
		Amount:     "много",
		AccountID:  uuid.NewString(),
		CategoryID: uuid.NewString(),
	}, s.userID)

	s.Require().NoError(s.handler.CommitDraft(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(string(ledgererrors.CantRecognizeAmount), decodeError(rec).Error.Code)
}

func (s *CommandHandlerSuite) TestCommitDraft_InvalidRequest() {
	tests := []dto.CommitDraftRequest{
		{Kind: "gift", Amount: "1", AccountID: uuid.NewString(), CategoryID: uuid.NewString()},
		{Kind: "income", Amount: "1", AccountID: "not-a-uuid", CategoryID: uuid.NewString()},
		{Kind: "income", Amount: "", AccountID: uuid.NewString(), CategoryID: uuid.NewString()},
	}

	for _, req := range tests {
		c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/drafts/commit", req, s.userID)

		s.Require().NoError(s.handler.CommitDraft(c))
		s.Equal(http.StatusBadRequest, rec.Code)
	}
}
