package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-funnel/internal/logging"
	"github.com/goliatone/go-funnel/internal/pages"
	"github.com/goliatone/go-funnel/pkg/interfaces"
	slug "github.com/goliatone/go-slug"
	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrSlugRequired     = errors.New("generator: slug is required")
	ErrDocumentRequired = errors.New("generator: document is required")
)

// GenerateRequest describes one publish build.
type GenerateRequest struct {
	ProjectID string
	Slug      string
	Document  *pages.PageDocument
	Theme     string
	Variant   string
}

// Artifact is the output of a publish build. Generation is deterministic: the
// same request yields the same HTML and checksum, so re-publishing an
// unchanged funnel is a no-op at the storage layer.
type Artifact struct {
	Slug        string
	Path        string
	URL         string
	HTML        string
	Checksum    string
	GeneratedAt time.Time
}

// Service renders page documents and persists the published artifact.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*Artifact, error)
	Preview(doc *pages.PageDocument, projectID string) (string, error)
}

type service struct {
	cfg        ThemingConfig
	renderer   *PageRenderer
	selector   *themeSelector
	writer     ArtifactWriter
	urls       *PublicURLs
	logger     interfaces.Logger
	now        func() time.Time
	formAction string
}

// Option configures the generator service.
type Option func(*service)

// WithWriter sets the artifact destination. Defaults to a no-op writer.
func WithWriter(w ArtifactWriter) Option {
	return func(s *service) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithRouteManager enables published-URL resolution.
func WithRouteManager(manager *urlkit.RouteManager) Option {
	return func(s *service) {
		s.urls = NewPublicURLs(manager)
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

// WithClock overrides the artifact timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithFormAction overrides the lead form submit target.
func WithFormAction(action string) Option {
	return func(s *service) {
		if action != "" {
			s.formAction = action
		}
	}
}

// WithThemeLoader overrides manifest loading, mainly for tests.
func WithThemeLoader(loader themeManifestLoader) Option {
	return func(s *service) {
		s.selector = newThemeSelector(s.cfg, loader)
	}
}

// NewService creates a generator service.
func NewService(cfg ThemingConfig, opts ...Option) Service {
	svc := &service{
		cfg:      cfg,
		renderer: NewPageRenderer(),
		writer:   NoopWriter{},
		urls:     NewPublicURLs(nil),
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	svc.selector = newThemeSelector(cfg, nil)
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*Artifact, error) {
	normalized, err := slug.Normalize(strings.TrimSpace(req.Slug))
	if err != nil || normalized == "" {
		return nil, ErrSlugRequired
	}
	if req.Document == nil {
		return nil, ErrDocumentRequired
	}

	selection, err := s.selector.Selection(req.Theme, req.Variant)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.RenderPage(req.Document, RenderContext{
		ProjectID:  req.ProjectID,
		FormAction: s.formAction,
		Theme:      buildThemeContext(selection, s.cfg),
	})
	if err != nil {
		return nil, err
	}

	artifactPath := path.Join(normalized, "index.html")
	if err := s.writer.WriteFile(ctx, artifactPath, []byte(html)); err != nil {
		return nil, err
	}

	url, err := s.urls.PageURL(normalized)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(html))
	artifact := &Artifact{
		Slug:        normalized,
		Path:        artifactPath,
		URL:         url,
		HTML:        html,
		Checksum:    hex.EncodeToString(sum[:]),
		GeneratedAt: s.now().UTC(),
	}

	s.logger.Info("published page generated",
		"slug", artifact.Slug,
		"path", artifact.Path,
		"checksum", artifact.Checksum,
	)
	return artifact, nil
}

// Preview renders without touching storage or URLs.
func (s *service) Preview(doc *pages.PageDocument, projectID string) (string, error) {
	return s.renderer.RenderPage(doc, RenderContext{
		ProjectID:  projectID,
		FormAction: s.formAction,
	})
}
