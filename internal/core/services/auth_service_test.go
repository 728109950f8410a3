package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/core/services"
	"github.com/SscSPs/sme_tax_estimator/internal/platform/config"
	"github.com/SscSPs/sme_tax_estimator/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "test-issuer",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
	suite.service = services.NewTokenService(suite.cfg, services.NewUserService(suite.mockUserRepo))
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken() {
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := suite.service.GenerateAccessToken(context.Background(), user)

	suite.Require().NoError(err)
	suite.WithinDuration(time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)
	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal("test-issuer", claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_IsRandom() {
	user := &domain.User{UserID: uuid.NewString()}

	first, expiresAt, err := suite.service.GenerateRefreshToken(context.Background(), user)
	suite.Require().NoError(err)
	second, _, err := suite.service.GenerateRefreshToken(context.Background(), user)
	suite.Require().NoError(err)

	suite.NotEmpty(first)
	suite.NotEqual(first, second)
	suite.WithinDuration(time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken() {
	ctx := context.Background()
	raw := "raw-refresh-token"
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	valid := &domain.User{UserID: uuid.NewString(), RefreshTokenHash: utils.HashRefreshToken(raw), RefreshTokenExpiryTime: &future}
	expired := &domain.User{UserID: uuid.NewString(), RefreshTokenHash: utils.HashRefreshToken(raw), RefreshTokenExpiryTime: &past}
	loggedOut := &domain.User{UserID: uuid.NewString()}
	missingID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, valid.UserID).Return(valid, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, expired.UserID).Return(expired, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, loggedOut.UserID).Return(loggedOut, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, missingID).Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.ValidateAndParseRefreshToken(ctx, valid.UserID, raw)
	suite.Require().NoError(err)
	suite.Equal(valid.UserID, user.UserID)

	_, err = suite.service.ValidateAndParseRefreshToken(ctx, valid.UserID, "someone-elses-token")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.ValidateAndParseRefreshToken(ctx, expired.UserID, raw)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)

	_, err = suite.service.ValidateAndParseRefreshToken(ctx, loggedOut.UserID, raw)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.ValidateAndParseRefreshToken(ctx, missingID, raw)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
