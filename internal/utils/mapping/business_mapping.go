package mapping

import (
	"database/sql"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business
func ToModelBusiness(d domain.Business) models.Business {
	m := models.Business{
		BusinessID:   d.BusinessID,
		OwnerID:      d.OwnerID,
		Name:         d.Name,
		TaxEnabled:   d.TaxSettings.IsEnabled,
		Jurisdiction: d.TaxSettings.Jurisdiction,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.TaxSettings.IncorporationDate != nil {
		m.IncorporationDate = sql.NullTime{Time: *d.TaxSettings.IncorporationDate, Valid: true}
	}
	return m
}

// ToDomainBusiness converts a model Business to a domain Business
func ToDomainBusiness(m models.Business) domain.Business {
	d := domain.Business{
		BusinessID: m.BusinessID,
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		BusinessProfile: domain.BusinessProfile{
			TaxSettings: domain.TaxSettings{
				IsEnabled:    m.TaxEnabled,
				Jurisdiction: m.Jurisdiction,
			},
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.IncorporationDate.Valid {
		t := m.IncorporationDate.Time
		d.TaxSettings.IncorporationDate = &t
	}
	return d
}

// ToDomainBusinessSlice converts a slice of model Businesses to a slice of domain Businesses
func ToDomainBusinessSlice(ms []models.Business) []domain.Business {
	ds := make([]domain.Business, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBusiness(m)
	}
	return ds
}
