package leads

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Submission is the payload accepted by the lead-capture boundary. Email is
// the only mandatory contact field.
type Submission struct {
	ProjectID string `json:"projectId"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message,omitempty"`
	Source    string `json:"source,omitempty"`
}

// Validate enforces the submission contract: a project target and a
// syntactically valid email address.
func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ProjectID, validation.Required),
		validation.Field(&s.Email, validation.Required, is.Email),
	)
}

// InboundLead is a captured lead persisted for the CRM surface.
type InboundLead struct {
	bun.BaseModel `bun:"table:inbound_leads,alias:il"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ProjectID string    `bun:"project_id,notnull" json:"project_id"`
	Email     string    `bun:"email,notnull" json:"email"`
	Name      string    `bun:"name" json:"name,omitempty"`
	Phone     string    `bun:"phone" json:"phone,omitempty"`
	Message   string    `bun:"message" json:"message,omitempty"`
	Source    string    `bun:"source" json:"source,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Submitter is the abstract success/failure boundary the public form depends
// on. Implementations may persist, forward, or simulate; the form only reacts
// to the returned error.
type Submitter interface {
	Submit(ctx context.Context, submission Submission) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, submission Submission) error

// Submit satisfies Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, submission Submission) error {
	return f(ctx, submission)
}

// Notifier observes captured leads, e.g. to fan out dashboard notifications.
// Failures are logged and ignored; capture never fails because of a notifier.
type Notifier interface {
	LeadCaptured(ctx context.Context, lead *InboundLead) error
}

// NotFoundError reports a missing lead record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return "leads: " + e.Resource + " " + e.Key + " not found"
}

var (
	ErrSubmissionInvalid = errors.New("leads: submission invalid")
	ErrFormBusy          = errors.New("leads: form is already submitting")
	ErrSubmitterRequired = errors.New("leads: form has no submitter")
)
