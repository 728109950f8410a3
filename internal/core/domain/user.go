package domain

import "time"

// User represents an owner account in the domain.
type User struct {
	UserID                 string     `json:"userID"` // Primary Key (UUID)
	Username               string     `json:"username"`
	PasswordHash           string     `json:"-"`
	Name                   string     `json:"name"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}
