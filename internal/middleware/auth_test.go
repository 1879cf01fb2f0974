package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger-bot/internal/config"
	apperrors "ledger-bot/internal/errors"
	"ledger-bot/internal/handlers"
	"ledger-bot/internal/models"
	"ledger-bot/internal/services"
	"ledger-bot/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	tokenService    services.TokenServiceInterface
	mockUserService *service_mocks.MockUserServiceInterface
	e               *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.mockUserService = service_mocks.NewMockUserServiceInterface(s.ctrl)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(duration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:    privateKey,
		PublicKey:     publicKey,
		Issuer:        "test-issuer",
		TokenDuration: duration,
	})
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	if next == nil {
		next = func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	// Auth middleware uses SendError which sends response and returns nil
	s.NoError(mw(next)(s.e.NewContext(req, rec)))
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	user := &models.User{ID: uuid.New(), ExternalID: 1001}
	s.mockUserService.EXPECT().EnsureUser(gomock.Any(), int64(1001), "ivan").Return(user, nil)

	token, _, err := s.tokenService.GenerateToken(1001, "ivan")
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService, s.mockUserService), "Bearer "+token, func(c echo.Context) error {
		s.Equal(user.ID, c.Get(handlers.UserIDContextKey))
		s.Equal(int64(1001), c.Get(handlers.ExternalIDContextKey))
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	rec := s.serve(RequireAuth(s.tokenService, s.mockUserService), "", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), string(apperrors.AuthMissingToken))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	rec := s.serve(RequireAuth(s.tokenService, s.mockUserService), "InvalidToken", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), string(apperrors.AuthInvalidTokenFormat))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	rec := s.serve(RequireAuth(s.tokenService, s.mockUserService), "Bearer invalid.jwt.token", nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromAnotherKey() {
	token, _, err := s.createTokenService(time.Hour).GenerateToken(1001, "")
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService, s.mockUserService), "Bearer "+token, nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expired := s.createTokenService(-time.Minute)
	token, _, err := expired.GenerateToken(1001, "")
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(expired, s.mockUserService), "Bearer "+token, nil)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), string(apperrors.AuthExpiredToken))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UsernameConflict() {
	s.mockUserService.EXPECT().
		EnsureUser(gomock.Any(), int64(1001), "ivan").
		Return(nil, apperrors.NewLedgerError(apperrors.UserAlreadyExists))

	token, _, err := s.tokenService.GenerateToken(1001, "ivan")
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService, s.mockUserService), "Bearer "+token, nil)

	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), string(apperrors.UserAlreadyExists))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UserLookupFails() {
	s.mockUserService.EXPECT().
		EnsureUser(gomock.Any(), int64(1001), "").
		Return(nil, errors.New("connection refused"))

	token, _, err := s.tokenService.GenerateToken(1001, "")
	s.Require().NoError(err)

	rec := s.serve(RequireAuth(s.tokenService, s.mockUserService), "Bearer "+token, nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}
