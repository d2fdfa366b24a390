package leads

import (
	"context"
	"sync"
)

// FormState models the lifecycle of the public lead-capture form.
type FormState string

const (
	StateIdle       FormState = "IDLE"
	StateSubmitting FormState = "SUBMITTING"
	StateSubmitted  FormState = "SUBMITTED"
)

// Form is the lead-capture state machine. It starts in IDLE, moves to
// SUBMITTING while a submission is in flight, and reaches SUBMITTED only on
// success. A failed submission returns the form to IDLE with every field
// value retained so the visitor can retry without retyping.
type Form struct {
	mu        sync.Mutex
	state     FormState
	name      string
	email     string
	phone     string
	message   string
	projectID string
	source    string
	submitter Submitter
}

// NewForm builds a form bound to a project and submission boundary. The
// source tag travels with every submission, defaulting to "public_page".
func NewForm(projectID string, submitter Submitter, source string) *Form {
	if source == "" {
		source = "public_page"
	}
	return &Form{
		state:     StateIdle,
		projectID: projectID,
		source:    source,
		submitter: submitter,
	}
}

// State returns the current lifecycle state.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns the current field values. They survive failed submissions.
func (f *Form) Values() (name, email, phone, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.email, f.phone, f.message
}

// SetName updates the name field. Edits are ignored while a submission is in
// flight or after success.
func (f *Form) SetName(v string) { f.setField(&f.name, v) }

// SetEmail updates the email field.
func (f *Form) SetEmail(v string) { f.setField(&f.email, v) }

// SetPhone updates the phone field.
func (f *Form) SetPhone(v string) { f.setField(&f.phone, v) }

// SetMessage updates the message field.
func (f *Form) SetMessage(v string) { f.setField(&f.message, v) }

func (f *Form) setField(dst *string, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIdle {
		return
	}
	*dst = v
}

// Submit runs the state machine once: IDLE -> SUBMITTING -> SUBMITTED on
// success, IDLE -> SUBMITTING -> IDLE on failure. The error from the
// submitter (or validation) is returned so the caller can surface it; field
// values are never cleared by a failure.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return ErrFormBusy
	}
	if f.submitter == nil {
		f.mu.Unlock()
		return ErrSubmitterRequired
	}
	submission := Submission{
		ProjectID: f.projectID,
		Email:     f.email,
		Name:      f.name,
		Phone:     f.phone,
		Message:   f.message,
		Source:    f.source,
	}
	if err := submission.Validate(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = StateSubmitting
	submitter := f.submitter
	f.mu.Unlock()

	err := submitter.Submit(ctx, submission)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateIdle
		return err
	}
	f.state = StateSubmitted
	return nil
}

// Reset clears every field and returns the form to IDLE, e.g. for a
// "submit another" affordance after success.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return
	}
	f.state = StateIdle
	f.name = ""
	f.email = ""
	f.phone = ""
	f.message = ""
}
