package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-funnel/internal/logging"
	"github.com/goliatone/go-funnel/pkg/interfaces"
	"github.com/google/uuid"
)

// Repository persists captured leads.
type Repository interface {
	Create(ctx context.Context, lead *InboundLead) (*InboundLead, error)
	GetByID(ctx context.Context, id uuid.UUID) (*InboundLead, error)
	ListByProject(ctx context.Context, projectID string) ([]*InboundLead, error)
}

// Service captures and reads inbound leads.
type Service interface {
	Submitter

	Capture(ctx context.Context, submission Submission) (*InboundLead, error)
	Get(ctx context.Context, id uuid.UUID) (*InboundLead, error)
	List(ctx context.Context, projectID string) ([]*InboundLead, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	logger   interfaces.Logger
	now      func() time.Time
	newID    func() uuid.UUID
}

// Option configures the lead service.
type Option func(*service)

// WithClock overrides the capture timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides lead ID generation.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithNotifier attaches a capture observer.
func WithNotifier(n Notifier) Option {
	return func(s *service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds the lead-capture service.
func NewService(repo Repository, opts ...Option) Service {
	svc := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Capture(ctx context.Context, submission Submission) (*InboundLead, error) {
	if err := submission.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionInvalid, err)
	}

	lead := &InboundLead{
		ID:        s.newID(),
		ProjectID: submission.ProjectID,
		Email:     submission.Email,
		Name:      submission.Name,
		Phone:     submission.Phone,
		Message:   submission.Message,
		Source:    submission.Source,
		CreatedAt: s.now().UTC(),
	}
	if lead.Source == "" {
		lead.Source = "public_page"
	}

	created, err := s.repo.Create(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("leads: capture: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.LeadCaptured(ctx, created); err != nil {
			s.logger.Warn("lead notification failed", "lead_id", created.ID, "error", err)
		}
	}

	s.logger.Info("lead captured", "lead_id", created.ID, "project_id", created.ProjectID, "source", created.Source)
	return created, nil
}

// Submit satisfies Submitter so the service can back a public form directly.
func (s *service) Submit(ctx context.Context, submission Submission) error {
	_, err := s.Capture(ctx, submission)
	return err
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*InboundLead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, projectID string) ([]*InboundLead, error) {
	return s.repo.ListByProject(ctx, projectID)
}
