package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"ledger-bot/internal/dto"
	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AliasHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAliasServiceInterface
	handler     *AliasHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func (s *AliasHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAliasServiceInterface(s.ctrl)
	s.handler = NewAliasHandler(s.mockService)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *AliasHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAliasHandlerSuite(t *testing.T) {
	suite.Run(t, new(AliasHandlerSuite))
}

func (s *AliasHandlerSuite) TestCreateAlias() {
	s.mockService.EXPECT().
		CreateAlias(gomock.Any(), s.userID, "сбер", "Сбербанк").
		Return(&models.Alias{ID: uuid.New(), UserID: s.userID, Alias: "сбер", Target: "Сбербанк"}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/aliases",
		dto.CreateAliasRequest{Alias: "сбер", Target: "Сбербанк"}, s.userID)

	s.Require().NoError(s.handler.CreateAlias(c))
	s.Equal(http.StatusCreated, rec.Code)

	var alias models.Alias
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &alias))
	s.Equal("Сбербанк", alias.Target)
}

func (s *AliasHandlerSuite) TestCreateAlias_WithWhitespaceRejected() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/aliases",
		dto.CreateAliasRequest{Alias: "две части", Target: "Сбербанк"}, s.userID)

	s.Require().NoError(s.handler.CreateAlias(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(ledgererrors.ValidationGeneral), decodeError(rec).Error.Code)
}

func (s *AliasHandlerSuite) TestCreateAlias_Taken() {
	s.mockService.EXPECT().
		CreateAlias(gomock.Any(), s.userID, "сбер", "Сбербанк").
		Return(nil, ledgererrors.NewLedgerError(ledgererrors.AliasTaken))

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/aliases",
		dto.CreateAliasRequest{Alias: "сбер", Target: "Сбербанк"}, s.userID)

	s.Require().NoError(s.handler.CreateAlias(c))
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *AliasHandlerSuite) TestListAliases() {
	s.mockService.EXPECT().
		ListAliases(gomock.Any(), s.userID).
		Return([]models.Alias{{Alias: "блэк", Target: "Тинькофф Блэк"}}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/aliases", nil, s.userID)

	s.Require().NoError(s.handler.ListAliases(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AliasListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Aliases, 1)
	s.Equal("блэк", resp.Aliases[0].Alias)
}

func (s *AliasHandlerSuite) TestDeleteAlias() {
	aliasID := uuid.New()
	s.mockService.EXPECT().DeleteAlias(gomock.Any(), s.userID, aliasID).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/aliases/"+aliasID.String(), nil, s.userID)
	withParam(c, "id", aliasID.String())

	s.Require().NoError(s.handler.DeleteAlias(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AliasHandlerSuite) TestDeleteAlias_NotFound() {
	aliasID := uuid.New()
	s.mockService.EXPECT().
		DeleteAlias(gomock.Any(), s.userID, aliasID).
		Return(ledgererrors.NewLedgerError(ledgererrors.AliasNotFound))

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/aliases/"+aliasID.String(), nil, s.userID)
	withParam(c, "id", aliasID.String())

	s.Require().NoError(s.handler.DeleteAlias(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
