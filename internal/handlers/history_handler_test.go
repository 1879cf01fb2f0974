package handlers

import (
	"encoding/json"
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

type HistoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	historyMock *service_mocks.MockHistoryServiceInterface
	ledgerMock  *service_mocks.MockLedgerServiceInterface
	handler     *HistoryHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func (s *HistoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.historyMock = service_mocks.NewMockHistoryServiceInterface(s.ctrl)
	s.ledgerMock = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewHistoryHandler(s.historyMock, s.ledgerMock)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *HistoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerSuite))
}

func (s *HistoryHandlerSuite) TestListEntries_Defaults() {
	entries := []models.Entry{{
		ID:          uuid.New(),
		Amount:      decimal.NewFromInt(-500),
		Description: gofakeit.Word(),
	}}
	s.historyMock.EXPECT().ListEntries(gomock.Any(), s.userID, 0, 20).Return(entries, int64(1), nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/entries", nil, s.userID)

	s.Require().NoError(s.handler.ListEntries(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.EntryListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
	s.Equal(20, resp.Limit)
	s.Len(resp.Entries, 1)
}

func (s *HistoryHandlerSuite) TestListEntries_ClampsPaging() {
	s.historyMock.EXPECT().
		ListEntries(gomock.Any(), s.userID, 0, services.MaxHistoryLimit).
		Return(nil, int64(0), nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/entries?offset=-5&limit=500", nil, s.userID)

	s.Require().NoError(s.handler.ListEntries(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HistoryHandlerSuite) TestListTransfers() {
	s.historyMock.EXPECT().
		ListTransfers(gomock.Any(), s.userID, 10, 5).
		Return([]models.Transfer{{ID: uuid.New()}}, int64(11), nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/transfers?offset=10&limit=5", nil, s.userID)

	s.Require().NoError(s.handler.ListTransfers(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransferListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(11), resp.Total)
	s.Equal(10, resp.Offset)
}

func (s *HistoryHandlerSuite) TestListEntries_Unauthenticated() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/entries", nil, uuid.Nil)

	s.Require().NoError(s.handler.ListEntries(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HistoryHandlerSuite) TestDeleteEntry() {
	entryID := uuid.New()
	s.ledgerMock.EXPECT().DeleteEntry(gomock.Any(), s.userID, entryID).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/entries/"+entryID.String(), nil, s.userID)
	withParam(c, "id", entryID.String())

	s.Require().NoError(s.handler.DeleteEntry(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HistoryHandlerSuite) TestDeleteTransfer_NotFound() {
	transferID := uuid.New()
	s.ledgerMock.EXPECT().
		DeleteTransfer(gomock.Any(), s.userID, transferID).
		Return(ledgererrors.NewLedgerError(ledgererrors.TransferNotFound))

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/transfers/"+transferID.String(), nil, s.userID)
	withParam(c, "id", transferID.String())

	s.Require().NoError(s.handler.DeleteTransfer(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(ledgererrors.TransferNotFound), decodeError(rec).Error.Code)
}
