package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
)

// DefaultJurisdiction is used when a business does not name one.
const DefaultJurisdiction = "NG"

// TaxSettingsRequest is the wire form of a business's tax settings.
type TaxSettingsRequest struct {
	IsEnabled         bool       `json:"isEnabled"`
	Jurisdiction      string     `json:"jurisdiction" binding:"omitempty,max=64"`
	IncorporationDate *time.Time `json:"incorporationDate,omitempty"`
}

// ToDomain converts the request to domain tax settings.
func (r TaxSettingsRequest) ToDomain() domain.TaxSettings {
	jurisdiction := strings.ToUpper(strings.TrimSpace(r.Jurisdiction))
	if jurisdiction == "" {
		jurisdiction = DefaultJurisdiction
	}
	return domain.TaxSettings{
		IsEnabled:         r.IsEnabled,
		Jurisdiction:      jurisdiction,
		IncorporationDate: r.IncorporationDate,
	}
}

// CreateBusinessRequest defines the data needed to create a business.
type CreateBusinessRequest struct {
	Name        string             `json:"name" binding:"required,max=200"`
	TaxSettings TaxSettingsRequest `json:"taxSettings"`
}

// UpdateTaxSettingsRequest replaces the tax settings of a business.
type UpdateTaxSettingsRequest struct {
	TaxSettingsRequest
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID    string             `json:"businessID"`
	Name          string             `json:"name"`
	TaxSettings   domain.TaxSettings `json:"taxSettings"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ListBusinessesResponse wraps the list of businesses.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:    b.BusinessID,
		Name:          b.Name,
		TaxSettings:   b.TaxSettings,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBusinessesResponse converts a slice of domain.Business to ListBusinessesResponse DTO
func ToListBusinessesResponse(businesses []domain.Business) ListBusinessesResponse {
	res := ListBusinessesResponse{Businesses: make([]BusinessResponse, len(businesses))}
	for i := range businesses {
		res.Businesses[i] = ToBusinessResponse(&businesses[i])
	}
	return res
}
