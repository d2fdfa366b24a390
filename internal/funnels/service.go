package funnels

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-funnel/internal/documents"
	"github.com/goliatone/go-funnel/internal/generator"
	"github.com/goliatone/go-funnel/internal/identity"
	"github.com/goliatone/go-funnel/internal/logging"
	"github.com/goliatone/go-funnel/internal/pages"
	"github.com/goliatone/go-funnel/internal/verticals"
	"github.com/goliatone/go-funnel/pkg/interfaces"
	slug "github.com/goliatone/go-slug"
)

// Repository persists funnels.
type Repository interface {
	Create(ctx context.Context, funnel *Funnel) (*Funnel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Funnel, error)
	GetBySlug(ctx context.Context, slug string) (*Funnel, error)
	ListByProject(ctx context.Context, projectID string) ([]*Funnel, error)
	Update(ctx context.Context, funnel *Funnel) (*Funnel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service manages the funnel lifecycle from vertical seed to published page.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Funnel, error)
	Get(ctx context.Context, id uuid.UUID) (*Funnel, error)
	GetBySlug(ctx context.Context, slug string) (*Funnel, error)
	List(ctx context.Context, projectID string) ([]*Funnel, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, doc documents.Document) (*Funnel, error)
	UpdatePage(ctx context.Context, id uuid.UUID, page pages.PageDocument) (*Funnel, error)
	Publish(ctx context.Context, id uuid.UUID) (*Funnel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	generator generator.Service
	logger    interfaces.Logger
	now       func() time.Time
}

// Option configures the funnel service.
type Option func(*service)

// WithGenerator wires the publish pipeline. Without it, Publish fails.
func WithGenerator(gen generator.Service) Option {
	return func(s *service) {
		if gen != nil {
			s.generator = gen
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

// WithClock overrides timestamp generation.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a funnel service.
func NewService(repo Repository, opts ...Option) Service {
	svc := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Funnel, error) {
	if s.repo == nil {
		return nil, ErrStoreRequired
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputInvalid, err)
	}

	normalized, err := slug.Normalize(input.Name)
	if err != nil || normalized == "" {
		return nil, fmt.Errorf("%w: name does not produce a usable slug", ErrInputInvalid)
	}

	vertical := verticals.Parse(string(input.Vertical))
	now := s.now().UTC()

	funnel := &Funnel{
		ID:        identity.FunnelUUID(input.ProjectID, normalized),
		ProjectID: input.ProjectID,
		Name:      strings.TrimSpace(input.Name),
		Slug:      normalized,
		Vertical:  vertical,
		Status:    StatusDraft,
		Document:  documents.Document{},
		Page:      verticals.TemplateFor(vertical),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, funnel)
	if err != nil {
		return nil, err
	}

	s.logger.Info("funnel created",
		"funnel_id", created.ID,
		"slug", created.Slug,
		"vertical", created.Vertical,
	)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Funnel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Funnel, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context, projectID string) ([]*Funnel, error) {
	return s.repo.ListByProject(ctx, projectID)
}

func (s *service) UpdateDocument(ctx context.Context, id uuid.UUID, doc documents.Document) (*Funnel, error) {
	funnel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	funnel.Document = doc
	funnel.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, funnel)
}

func (s *service) UpdatePage(ctx context.Context, id uuid.UUID, page pages.PageDocument) (*Funnel, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	funnel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	funnel.Page = page
	funnel.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, funnel)
}

// Publish renders the funnel's page document and records the published URL.
// Republishing a funnel regenerates the same artifact; the operation is
// idempotent for unchanged content.
func (s *service) Publish(ctx context.Context, id uuid.UUID) (*Funnel, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("funnels: publish requires a generator")
	}

	funnel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	page := funnel.Page
	artifact, err := s.generator.Generate(ctx, generator.GenerateRequest{
		ProjectID: funnel.ProjectID,
		Slug:      funnel.Slug,
		Document:  &page,
	})
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	funnel.Status = StatusPublished
	funnel.PublishedURL = artifact.URL
	funnel.PublishedAt = &now
	funnel.Page.PublishedURL = artifact.URL
	funnel.UpdatedAt = now

	updated, err := s.repo.Update(ctx, funnel)
	if err != nil {
		return nil, err
	}

	s.logger.Info("funnel published",
		"funnel_id", updated.ID,
		"slug", updated.Slug,
		"url", updated.PublishedURL,
		"checksum", artifact.Checksum,
	)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
