package domain

import "time"

// TaxSettings holds the tax opt-in and jurisdiction details of a business.
type TaxSettings struct {
	IsEnabled    bool   `json:"isEnabled" yaml:"isEnabled"`
	Jurisdiction string `json:"jurisdiction" yaml:"jurisdiction"`
	// IncorporationDate is reserved for pioneer-status rules; no current band reads it.
	IncorporationDate *time.Time `json:"incorporationDate,omitempty" yaml:"incorporationDate,omitempty"`
}

// BusinessProfile is the read-only view of a business handed to the tax engine.
type BusinessProfile struct {
	TaxSettings TaxSettings `json:"taxSettings" yaml:"taxSettings"`
}

// Business represents a business owned by a user.
type Business struct {
	BusinessID string `json:"businessID"`
	OwnerID    string `json:"ownerID"`
	Name       string `json:"name"`
	BusinessProfile
	AuditFields
}
