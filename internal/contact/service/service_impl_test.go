package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/octolab/storefront/internal/clock"
	"github.com/octolab/storefront/internal/config"
	"github.com/octolab/storefront/internal/contact/domain"
	"github.com/octolab/storefront/internal/contact/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type emailStub struct {
	mu      sync.Mutex
	sends   int
	lastTo  []string
	subject string
	body    string
	err     error
}

func (e *emailStub) Send(ctx context.Context, to []string, subject, body string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sends++
	e.lastTo = to
	e.subject = subject
	e.body = body
	return e.err
}

func (e *emailStub) Sends() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sends
}

func setupContactService(t *testing.T, stub *emailStub) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Submission{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{}
	cfg.Email.ContactInbox = "inbox@octolab.shop"

	return New(Params{
		Cfg:   cfg,
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
		Email: stub,
	})
}

func validSubmit() domain.SubmitRequest {
	return domain.SubmitRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   domain.SubjectGeneralInquiry,
		Message:   "Requesting the latest COA for BPC-157.",
	}
}

func TestSubmitDeliversAndRecordsSuccess(t *testing.T) {
	stub := &emailStub{}
	svc := setupContactService(t, stub)

	resp, err := svc.Submit(context.Background(), validSubmit())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSucceeded, resp.Status)
	assert.Nil(t, resp.FailureReason)
	assert.Equal(t, 1, stub.Sends())
	assert.Equal(t, []string{"inbox@octolab.shop"}, stub.lastTo)
	assert.Contains(t, stub.subject, "General Inquiry")
	assert.Contains(t, stub.body, "ada@example.com")
}

func TestSubmitRecordsTransportFailure(t *testing.T) {
	stub := &emailStub{err: errors.New("smtp: connection refused")}
	svc := setupContactService(t, stub)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFailed, resp.Status)
	require.NotNil(t, resp.FailureReason)
	assert.Contains(t, *resp.FailureReason, "connection refused")

	// The stored row carries the same status.
	got, err := svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, got.Status)
}

func TestSubmitEscapesMessageBody(t *testing.T) {
	stub := &emailStub{}
	svc := setupContactService(t, stub)

	req := validSubmit()
	req.Message = `<script>alert("x")</script>`
	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.NotContains(t, stub.body, "<script>")
	assert.Contains(t, stub.body, "&lt;script&gt;")
}

func TestSubmitValidation(t *testing.T) {
	svc := setupContactService(t, &emailStub{})
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*domain.SubmitRequest)
		wantErr error
	}{
		{"missing first name", func(r *domain.SubmitRequest) { r.FirstName = "  " }, domain.ErrInvalidFirstName},
		{"missing last name", func(r *domain.SubmitRequest) { r.LastName = "" }, domain.ErrInvalidLastName},
		{"malformed email", func(r *domain.SubmitRequest) { r.Email = "not-an-address" }, domain.ErrInvalidEmail},
		{"unknown subject", func(r *domain.SubmitRequest) { r.Subject = "spam" }, domain.ErrInvalidSubject},
		{"empty message", func(r *domain.SubmitRequest) { r.Message = strings.Repeat(" ", 5) }, domain.ErrInvalidMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmit()
			tc.mutate(&req)
			_, err := svc.Submit(ctx, req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRetryFailedSubmission(t *testing.T) {
	stub := &emailStub{err: errors.New("smtp: timeout")}
	svc := setupContactService(t, stub)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	require.Equal(t, domain.StatusFailed, resp.Status)

	stub.err = nil
	retried, err := svc.Retry(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, retried.Status)
	assert.Nil(t, retried.FailureReason)
	assert.Equal(t, 2, stub.Sends())
}

func TestRetrySucceededSubmissionIsRejected(t *testing.T) {
	stub := &emailStub{}
	svc := setupContactService(t, stub)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	require.Equal(t, domain.StatusSucceeded, resp.Status)

	_, err = svc.Retry(ctx, resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotRetryable)
	assert.Equal(t, 1, stub.Sends())
}

func TestGetUnknownSubmission(t *testing.T) {
	svc := setupContactService(t, &emailStub{})

	_, err := svc.Get(context.Background(), snowflake.ID(99).String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMalformedID(t *testing.T) {
	svc := setupContactService(t, &emailStub{})

	_, err := svc.Get(context.Background(), "abc!")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
