package services

import (
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"ledger-bot/internal/config"
	"ledger-bot/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    TokenServiceInterface
	issuer     string
}

func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        s.issuer,
		TokenDuration: time.Hour,
	})
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateToken(424242, "bob")
	s.Require().NoError(err)
	s.True(expiresAt.After(time.Now()))

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("bob", claims.Username)

	externalID, err := claims.ExternalID()
	s.Require().NoError(err)
	s.Equal(int64(424242), externalID)
}

func (s *TokenServiceTestSuite) TestGenerate_RequiresPrivateKey() {
	verifyOnly := NewTokenService(&config.JWTConfig{PublicKey: s.publicKey, Issuer: s.issuer, TokenDuration: time.Hour})

	_, _, err := verifyOnly.GenerateToken(1, "")

	s.ErrorIs(err, ErrSigningDisabled)
}

func (s *TokenServiceTestSuite) TestValidate_Expired() {
	expired := NewTokenService(&config.JWTConfig{
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        s.issuer,
		TokenDuration: -time.Minute,
	})
	token, _, err := expired.GenerateToken(1, "")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)

	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidate_WrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		PrivateKey:    s.privateKey,
		PublicKey:     s.publicKey,
		Issuer:        "someone-else",
		TokenDuration: time.Hour,
	})
	token, _, err := other.GenerateToken(1, "")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)

	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidate_ForeignKey() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	foreign := NewTokenService(&config.JWTConfig{
		PrivateKey:    otherKey,
		PublicKey:     &otherKey.PublicKey,
		Issuer:        s.issuer,
		TokenDuration: time.Hour,
	})
	token, _, err := foreign.GenerateToken(1, "")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)

	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_RejectsHMAC() {
	claims := models.ChatClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)

	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_NonNumericSubject() {
	claims := models.ChatClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)

	s.ErrorIs(err, ErrInvalidSubject)
}

func (s *TokenServiceTestSuite) TestValidate_Empty() {
	_, err := s.service.ValidateToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"basic", "Basic abc", "", true},
		{"no token", "Bearer   ", "", true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, strings.TrimSpace(got))
		})
	}
}
