package models

import "database/sql"

// Business is a row of the businesses table. Tax settings are flattened into columns.
type Business struct {
	BusinessID        string       `db:"business_id"`
	OwnerID           string       `db:"owner_id"`
	Name              string       `db:"name"`
	TaxEnabled        bool         `db:"tax_enabled"`
	Jurisdiction      string       `db:"jurisdiction"`
	IncorporationDate sql.NullTime `db:"incorporation_date"`
	AuditFields
}
