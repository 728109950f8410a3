package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/core/services"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	service          portssvc.BusinessSvcFacade
	ownerID          string
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_DefaultsJurisdiction() {
	ctx := context.Background()
	req := dto.CreateBusinessRequest{
		Name:        "  Mama Put Kitchen ",
		TaxSettings: dto.TaxSettingsRequest{IsEnabled: true},
	}

	suite.mockBusinessRepo.On("SaveBusiness", ctx, mock.MatchedBy(func(b domain.Business) bool {
		return b.Name == "Mama Put Kitchen" && b.OwnerID == suite.ownerID &&
			b.TaxSettings.IsEnabled && b.TaxSettings.Jurisdiction == dto.DefaultJurisdiction
	})).Return(nil).Once()

	business, err := suite.service.CreateBusiness(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotEmpty(business.BusinessID)
	suite.Equal(suite.ownerID, business.CreatedBy)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_BlankName() {
	business, err := suite.service.CreateBusiness(context.Background(), dto.CreateBusinessRequest{Name: "   "}, suite.ownerID)

	suite.Nil(business)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBusinessRepo.AssertNotCalled(suite.T(), "SaveBusiness", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestGetBusiness_Ownership() {
	ctx := context.Background()
	businessID := uuid.NewString()
	stored := &domain.Business{BusinessID: businessID, OwnerID: suite.ownerID, Name: "Shop"}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(stored, nil)

	business, err := suite.service.GetBusiness(ctx, businessID, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal("Shop", business.Name)

	_, err = suite.service.GetBusiness(ctx, businessID, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BusinessServiceTestSuite) TestGetBusiness_NotFound() {
	ctx := context.Background()
	businessID := uuid.NewString()
	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBusiness(ctx, businessID, suite.ownerID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BusinessServiceTestSuite) TestListBusinesses_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockBusinessRepo.On("ListBusinessesByOwner", ctx, suite.ownerID).Return(nil, nil).Once()

	businesses, err := suite.service.ListBusinesses(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotNil(businesses)
	suite.Empty(businesses)
}

func (suite *BusinessServiceTestSuite) TestUpdateTaxSettings() {
	ctx := context.Background()
	businessID := uuid.NewString()
	stored := &domain.Business{BusinessID: businessID, OwnerID: suite.ownerID, Name: "Shop"}
	req := dto.UpdateTaxSettingsRequest{TaxSettingsRequest: dto.TaxSettingsRequest{IsEnabled: true, Jurisdiction: "ng"}}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(stored, nil).Once()
	suite.mockBusinessRepo.On("UpdateTaxSettings", ctx, businessID,
		domain.TaxSettings{IsEnabled: true, Jurisdiction: "NG"}, suite.ownerID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	business, err := suite.service.UpdateTaxSettings(ctx, businessID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.True(business.TaxSettings.IsEnabled)
	suite.Equal("NG", business.TaxSettings.Jurisdiction)
	suite.Equal(suite.ownerID, business.LastUpdatedBy)
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessServiceTestSuite) TestUpdateTaxSettings_RepoError() {
	ctx := context.Background()
	businessID := uuid.NewString()
	stored := &domain.Business{BusinessID: businessID, OwnerID: suite.ownerID}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(stored, nil).Once()
	suite.mockBusinessRepo.On("UpdateTaxSettings", ctx, businessID, mock.Anything, suite.ownerID, mock.Anything).
		Return(assert.AnError).Once()

	_, err := suite.service.UpdateTaxSettings(ctx, businessID, dto.UpdateTaxSettingsRequest{}, suite.ownerID)
	suite.ErrorIs(err, assert.AnError)
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
