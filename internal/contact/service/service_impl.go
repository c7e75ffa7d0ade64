package service

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/octolab/storefront/internal/clock"
	"github.com/octolab/storefront/internal/config"
	"github.com/octolab/storefront/internal/contact/domain"
	"github.com/octolab/storefront/internal/providers/email"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var subjectLabels = map[string]string{
	domain.SubjectGeneralInquiry: "General Inquiry",
	domain.SubjectOrderSupport:   "Order Support",
	domain.SubjectWholesale:      "Wholesale & Research",
	domain.SubjectQualityControl: "Quality Control Data",
}

type Params struct {
	fx.In

	Cfg   config.Config
	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
	Email email.Provider
}

type Service struct {
	cfg   config.Config
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
	email email.Provider
}

func New(p Params) domain.Service {
	return &Service{
		cfg:   p.Cfg,
		db:    p.DB,
		log:   p.Log.Named("contact.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
		email: p.Email,
	}
}

// Submit stores the submission first, then attempts dispatch. The stored row
// is the source of truth for the Pending/Succeeded/Failed contract; a
// transport failure is recorded, never swallowed into a fake success.
func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Response, error) {
	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, domain.ErrInvalidFirstName
	}
	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		return nil, domain.ErrInvalidLastName
	}
	address := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(address); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	subject, ok := domain.ParseSubject(req.Subject)
	if !ok {
		return nil, domain.ErrInvalidSubject
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.ErrInvalidMessage
	}

	now := s.clock.Now()
	submission := &domain.Submission{
		ID:        s.genID.Generate().Int64(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     address,
		Subject:   subject,
		Message:   message,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, s.db, submission); err != nil {
		return nil, err
	}

	s.dispatch(ctx, submission)

	resp := toResponse(submission)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	submission, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(submission)
	return &resp, nil
}

func (s *Service) Retry(ctx context.Context, id string) (*domain.Response, error) {
	submission, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission.Status != domain.StatusFailed {
		return nil, domain.ErrNotRetryable
	}

	submission.Status = domain.StatusPending
	submission.FailureReason = nil
	submission.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateStatus(ctx, s.db, submission); err != nil {
		return nil, err
	}

	s.dispatch(ctx, submission)

	resp := toResponse(submission)
	return &resp, nil
}

func (s *Service) dispatch(ctx context.Context, submission *domain.Submission) {
	subject := fmt.Sprintf("[contact] %s - %s %s",
		subjectLabels[submission.Subject], submission.FirstName, submission.LastName)
	body := fmt.Sprintf(
		"<p>From: %s %s &lt;%s&gt;</p><p>Subject: %s</p><p>%s</p>",
		html.EscapeString(submission.FirstName),
		html.EscapeString(submission.LastName),
		html.EscapeString(submission.Email),
		html.EscapeString(subjectLabels[submission.Subject]),
		html.EscapeString(submission.Message),
	)

	err := s.email.Send(ctx, []string{s.cfg.Email.ContactInbox}, subject, body)

	submission.UpdatedAt = s.clock.Now()
	if err != nil {
		reason := err.Error()
		submission.Status = domain.StatusFailed
		submission.FailureReason = &reason
		s.log.Warn("contact dispatch failed",
			zap.String("submission_id", snowflake.ID(submission.ID).String()),
			zap.Error(err),
		)
	} else {
		submission.Status = domain.StatusSucceeded
		submission.FailureReason = nil
	}

	if updateErr := s.repo.UpdateStatus(ctx, s.db, submission); updateErr != nil {
		s.log.Error("contact status update failed",
			zap.String("submission_id", snowflake.ID(submission.ID).String()),
			zap.Error(updateErr),
		)
	}
}

func (s *Service) find(ctx context.Context, id string) (*domain.Submission, error) {
	submissionID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	submission, err := s.repo.FindByID(ctx, s.db, submissionID.Int64())
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, domain.ErrNotFound
	}
	return submission, nil
}

func toResponse(submission *domain.Submission) domain.Response {
	return domain.Response{
		ID:            snowflake.ID(submission.ID).String(),
		Subject:       submission.Subject,
		Status:        submission.Status,
		FailureReason: submission.FailureReason,
		CreatedAt:     submission.CreatedAt,
		UpdatedAt:     submission.UpdatedAt,
	}
}
