package funnels

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-funnel/internal/documents"
	"github.com/goliatone/go-funnel/internal/pages"
	"github.com/goliatone/go-funnel/internal/verticals"
)

// Status tracks a funnel's publish lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Funnel is the aggregate root: the editable block document, the flattened
// page document served publicly, and the publish state that links them.
type Funnel struct {
	bun.BaseModel `bun:"table:funnels,alias:f"`

	ID        uuid.UUID          `bun:",pk,type:uuid" json:"id"`
	ProjectID string             `bun:"project_id,notnull" json:"project_id"`
	Name      string             `bun:"name,notnull" json:"name"`
	Slug      string             `bun:"slug,notnull,unique" json:"slug"`
	Vertical  verticals.Vertical `bun:"vertical,notnull" json:"vertical"`
	Status    Status             `bun:"status,notnull,default:'draft'" json:"status"`

	Document documents.Document `bun:"document,type:jsonb" json:"document"`
	Page     pages.PageDocument `bun:"page_document,type:jsonb" json:"page_document"`

	PublishedURL string     `bun:"published_url" json:"published_url,omitempty"`
	PublishedAt  *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// CreateInput seeds a new funnel from a vertical template.
type CreateInput struct {
	ProjectID string
	Name      string
	Vertical  verticals.Vertical
}

// Validate enforces the create contract. The vertical is normalized by the
// service, so any non-empty value is accepted here.
func (i CreateInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ProjectID, validation.Required),
		validation.Field(&i.Name, validation.Required, validation.Length(1, 120)),
	)
}

// NotFoundError reports a missing funnel.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return "funnels: " + e.Resource + " " + e.Key + " not found"
}

var (
	ErrInputInvalid  = errors.New("funnels: input invalid")
	ErrSlugTaken     = errors.New("funnels: slug already in use")
	ErrNotPublished  = errors.New("funnels: funnel is not published")
	ErrStoreRequired = errors.New("funnels: repository is required")
)
