package domain

import (
	"strings"
	"time"
)

// Submission statuses. A row is created as pending, then the dispatch attempt
// moves it to succeeded or failed. Failed rows can be retried.
const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

const (
	SubjectGeneralInquiry = "general_inquiry"
	SubjectOrderSupport   = "order_support"
	SubjectWholesale      = "wholesale"
	SubjectQualityControl = "quality_control_data"
)

// ParseSubject normalizes and validates a contact subject.
func ParseSubject(raw string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SubjectGeneralInquiry:
		return SubjectGeneralInquiry, true
	case SubjectOrderSupport:
		return SubjectOrderSupport, true
	case SubjectWholesale:
		return SubjectWholesale, true
	case SubjectQualityControl:
		return SubjectQualityControl, true
	default:
		return "", false
	}
}

type Submission struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	FirstName     string    `json:"first_name" gorm:"type:text;not null"`
	LastName      string    `json:"last_name" gorm:"type:text;not null"`
	Email         string    `json:"email" gorm:"type:text;not null"`
	Subject       string    `json:"subject" gorm:"type:text;not null"`
	Message       string    `json:"message" gorm:"type:text;not null"`
	Status        string    `json:"status" gorm:"type:text;not null;index"`
	FailureReason *string   `json:"failure_reason,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Submission) TableName() string { return "contact_submissions" }
