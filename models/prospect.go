package models

import "time"

// Call statuses tracked through the calling pipeline.
const (
	CallStatusNotCalled     = "Not Called"
	CallStatusCalled        = "Called"
	CallStatusNoAnswer      = "No Answer"
	CallStatusInterested    = "Interested"
	CallStatusNotInterested = "Not Interested"
)

// Prospect pipeline statuses.
const (
	ProspectStatusProspect      = "Prospect"
	ProspectStatusDeclined      = "Declined"
	ProspectStatusNotSure       = "Not Sure"
	ProspectStatusSecuredClient = "Secured Client"
	ProspectStatusOngoingClient = "Ongoing Client"
)

// Prospect represents a sales lead tracked through the call pipeline.
// CompanyName is unique case-insensitively (enforced by a unique index on
// lower(company_name), see Migrate). Industry is stored lowercased.
type Prospect struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyName   string `gorm:"not null" json:"company_name"`
	ContactPerson string `gorm:"not null" json:"contact_person"`
	ContactNumber string `gorm:"not null" json:"contact_number"`
	EmailAddress  string `gorm:"not null" json:"email_address"`
	Industry      string `gorm:"not null" json:"industry"`

	Website *string `json:"website"`

	CallStatus     string `gorm:"not null;default:Not Called" json:"call_status"`
	ProspectStatus string `gorm:"not null;default:Prospect" json:"prospect_status"`

	// Maintained by the server: CalledCount is bumped and LastCalledAt
	// stamped exactly when an update sets CallStatus to "Called".
	CalledCount  int        `gorm:"not null;default:0" json:"called_count"`
	LastCalledAt *time.Time `json:"last_called_at"`

	Notes        *string    `gorm:"type:text" json:"notes"`
	FollowUpDate *time.Time `gorm:"type:date" json:"follow_up_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidCallStatus reports whether s is one of the accepted call statuses.
func IsValidCallStatus(s string) bool {
	switch s {
	case CallStatusNotCalled, CallStatusCalled, CallStatusNoAnswer,
		CallStatusInterested, CallStatusNotInterested:
		return true
	}
	return false
}

// IsValidProspectStatus reports whether s is one of the accepted pipeline statuses.
func IsValidProspectStatus(s string) bool {
	switch s {
	case ProspectStatusProspect, ProspectStatusDeclined, ProspectStatusNotSure,
		ProspectStatusSecuredClient, ProspectStatusOngoingClient:
		return true
	}
	return false
}
