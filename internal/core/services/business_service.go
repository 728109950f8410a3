package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/google/uuid"
)

type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewBusinessService creates a new business service. It is also the
// ownership authorizer handed to the other services.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade) portssvc.BusinessSvcFacade {
	svc := &businessService{businessRepo: businessRepo}
	svc.BusinessAuthorizer = svc
	return svc
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: business name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	business := domain.Business{
		BusinessID:      uuid.NewString(),
		OwnerID:         userID,
		Name:            name,
		BusinessProfile: domain.BusinessProfile{TaxSettings: req.TaxSettings.ToDomain()},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		s.LogError(ctx, err, "Failed to save business", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	s.LogInfo(ctx, "Business created",
		slog.String("business_id", business.BusinessID),
		slog.Bool("tax_enabled", business.TaxSettings.IsEnabled))
	return &business, nil
}

func (s *businessService) GetBusiness(ctx context.Context, businessID, userID string) (*domain.Business, error) {
	return s.AuthorizeOwner(ctx, userID, businessID)
}

func (s *businessService) ListBusinesses(ctx context.Context, userID string) ([]domain.Business, error) {
	businesses, err := s.businessRepo.ListBusinessesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	if businesses == nil {
		businesses = []domain.Business{}
	}
	return businesses, nil
}

func (s *businessService) UpdateTaxSettings(ctx context.Context, businessID string, req dto.UpdateTaxSettingsRequest, userID string) (*domain.Business, error) {
	business, err := s.AuthorizeOwner(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	settings := req.ToDomain()
	now := time.Now().UTC()
	if err := s.businessRepo.UpdateTaxSettings(ctx, businessID, settings, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update tax settings", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to update tax settings: %w", err)
	}

	business.TaxSettings = settings
	business.LastUpdatedAt = now
	business.LastUpdatedBy = userID
	s.LogInfo(ctx, "Tax settings updated",
		slog.String("business_id", businessID),
		slog.Bool("tax_enabled", settings.IsEnabled))
	return business, nil
}

// AuthorizeOwner implements portssvc.BusinessAuthorizerSvc.
func (s *businessService) AuthorizeOwner(ctx context.Context, userID, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business %s: %w", businessID, err)
	}
	if business.OwnerID != userID {
		return nil, fmt.Errorf("user does not own business %s: %w", businessID, apperrors.ErrForbidden)
	}
	return business, nil
}
