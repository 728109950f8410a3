package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/accounting"
	"github.com/google/uuid"
)

type revenueService struct {
	BaseService
	revenueRepo portsrepo.RevenueRepositoryFacade
}

// NewRevenueService creates a new revenue service.
func NewRevenueService(repo portsrepo.RevenueRepositoryFacade, authorizer portssvc.BusinessAuthorizerSvc) portssvc.RevenueSvcFacade {
	svc := &revenueService{revenueRepo: repo}
	svc.BusinessAuthorizer = authorizer
	return svc
}

var _ portssvc.RevenueSvcFacade = (*revenueService)(nil)

// RecordRevenue stores a sale (flow in, the default) or a refund paid back to a customer (flow out).
func (s *revenueService) RecordRevenue(ctx context.Context, businessID string, req dto.CreateRevenueRequest, userID string) (*domain.RevenueEntry, error) {
	if _, err := s.AuthorizeOwner(ctx, userID, businessID); err != nil {
		return nil, err
	}

	flow := domain.FlowIn
	if strings.TrimSpace(string(req.FlowType)) != "" {
		flow = req.FlowType.Normalize()
	}

	now := time.Now().UTC()
	entry := domain.RevenueEntry{
		EntryID:     uuid.NewString(),
		BusinessID:  businessID,
		Amount:      accounting.NonNegative(req.Amount.Decimal),
		FlowType:    flow,
		Description: strings.TrimSpace(req.Description),
		EntryDate:   truncateToDate(req.EntryDate),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.revenueRepo.SaveRevenueEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save revenue entry", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to record revenue: %w", err)
	}

	s.LogInfo(ctx, "Revenue recorded",
		slog.String("business_id", businessID),
		slog.String("entry_id", entry.EntryID),
		slog.String("flow_type", string(flow)))
	return &entry, nil
}

func (s *revenueService) ListRevenue(ctx context.Context, businessID, userID string, period domain.Period) (*dto.ListRevenueResponse, error) {
	if _, err := s.AuthorizeOwner(ctx, userID, businessID); err != nil {
		return nil, err
	}

	entries, err := s.revenueRepo.ListRevenueEntries(ctx, businessID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list revenue", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list revenue: %w", err)
	}
	return dto.ToListRevenueResponse(entries, accounting.NetRevenue(entries), period), nil
}
