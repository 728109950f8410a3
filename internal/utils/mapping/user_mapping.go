package mapping

import (
	"database/sql"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:           d.UserID,
		Username:         d.Username,
		PasswordHash:     d.PasswordHash,
		Name:             d.Name,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		RefreshTokenHash: sql.NullString{String: d.RefreshTokenHash, Valid: d.RefreshTokenHash != ""},
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:           m.UserID,
		Username:         m.Username,
		PasswordHash:     m.PasswordHash,
		Name:             m.Name,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		RefreshTokenHash: m.RefreshTokenHash.String,
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}
