package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, submission *Submission) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Submission, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, submission *Submission) error
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Retry(ctx context.Context, id string) (*Response, error)
}

type SubmitRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type Response struct {
	ID            string    `json:"id"`
	Subject       string    `json:"subject"`
	Status        string    `json:"status"`
	FailureReason *string   `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var (
	ErrInvalidFirstName = errors.New("invalid_first_name")
	ErrInvalidLastName  = errors.New("invalid_last_name")
	ErrInvalidEmail     = errors.New("invalid_email")
	ErrInvalidSubject   = errors.New("invalid_subject")
	ErrInvalidMessage   = errors.New("invalid_message")
	ErrInvalidID        = errors.New("invalid_submission_id")
	ErrNotFound         = errors.New("submission_not_found")
	ErrNotRetryable     = errors.New("submission_not_retryable")
)
