package models

import "time"

// Company statuses accepted by the API.
const (
	CompanyStatusActive   = "Active"
	CompanyStatusInactive = "Inactive"
	CompanyStatusPending  = "Pending"
)

// Company represents a client/account record
type Company struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyName   string `gorm:"not null" json:"company_name"`
	ClientName    string `gorm:"not null" json:"client_name"`
	ContactNumber string `gorm:"not null" json:"contact_number"`
	EmailAddress  string `gorm:"not null" json:"email_address"`
	Industry      string `gorm:"not null" json:"industry"`

	// Optional free text, NULL when empty
	Remarks *string `gorm:"type:text" json:"remarks"`
	ToDo    *string `gorm:"column:to_do;type:text" json:"to_do"`

	Status string `gorm:"not null;default:Active" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidCompanyStatus reports whether s is one of the accepted statuses.
func IsValidCompanyStatus(s string) bool {
	switch s {
	case CompanyStatusActive, CompanyStatusInactive, CompanyStatusPending:
		return true
	}
	return false
}
