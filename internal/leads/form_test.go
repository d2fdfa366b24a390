package leads_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-funnel/internal/leads"
)

func TestFormSubmitSuccessTransitions(t *testing.T) {
	var observed []leads.FormState

	var form *leads.Form
	submitter := leads.SubmitterFunc(func(ctx context.Context, submission leads.Submission) error {
		observed = append(observed, form.State())
		if submission.Email != "a@b.com" {
			t.Fatalf("expected submission email a@b.com, got %q", submission.Email)
		}
		if submission.ProjectID != "project-1" {
			t.Fatalf("expected projectId project-1, got %q", submission.ProjectID)
		}
		return nil
	})
	form = leads.NewForm("project-1", submitter, "")

	if form.State() != leads.StateIdle {
		t.Fatalf("expected initial state IDLE, got %s", form.State())
	}

	form.SetName("Ada")
	form.SetEmail("a@b.com")

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(observed) != 1 || observed[0] != leads.StateSubmitting {
		t.Fatalf("expected form to be SUBMITTING while in flight, observed %v", observed)
	}
	if form.State() != leads.StateSubmitted {
		t.Fatalf("expected state SUBMITTED after success, got %s", form.State())
	}
}

func TestFormSubmitFailureRetainsValues(t *testing.T) {
	boom := errors.New("upstream unavailable")
	submitter := leads.SubmitterFunc(func(context.Context, leads.Submission) error {
		return boom
	})
	form := leads.NewForm("project-1", submitter, "")
	form.SetEmail("a@b.com")
	form.SetName("Ada")
	form.SetPhone("555-0100")

	err := form.Submit(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected submitter error, got %v", err)
	}
	if form.State() != leads.StateIdle {
		t.Fatalf("expected state IDLE after failure, got %s", form.State())
	}

	name, email, phone, _ := form.Values()
	if email != "a@b.com" {
		t.Fatalf("expected email retained after failure, got %q", email)
	}
	if name != "Ada" || phone != "555-0100" {
		t.Fatalf("expected all fields retained after failure, got %q %q", name, phone)
	}
}

func TestFormSubmitValidatesEmail(t *testing.T) {
	called := false
	submitter := leads.SubmitterFunc(func(context.Context, leads.Submission) error {
		called = true
		return nil
	})
	form := leads.NewForm("project-1", submitter, "")
	form.SetEmail("not-an-email")

	if err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error for malformed email")
	}
	if called {
		t.Fatal("expected submitter not to be called on validation failure")
	}
	if form.State() != leads.StateIdle {
		t.Fatalf("expected state IDLE after validation failure, got %s", form.State())
	}
}

func TestFormSubmitWithoutSubmitter(t *testing.T) {
	form := leads.NewForm("project-1", nil, "")
	form.SetEmail("a@b.com")

	if err := form.Submit(context.Background()); !errors.Is(err, leads.ErrSubmitterRequired) {
		t.Fatalf("expected ErrSubmitterRequired, got %v", err)
	}
	if form.State() != leads.StateIdle {
		t.Fatalf("expected state IDLE without a submitter, got %s", form.State())
	}

	if name, email, _, _ := form.Values(); name != "" || email != "a@b.com" {
		t.Fatalf("expected field values retained, got name=%q email=%q", name, email)
	}
}

func TestFormIgnoresEditsWhileSubmitting(t *testing.T) {
	var form *leads.Form
	submitter := leads.SubmitterFunc(func(context.Context, leads.Submission) error {
		form.SetEmail("changed@b.com")
		return nil
	})
	form = leads.NewForm("project-1", submitter, "")
	form.SetEmail("a@b.com")

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, email, _, _ := form.Values()
	if email != "a@b.com" {
		t.Fatalf("expected in-flight edits ignored, got %q", email)
	}
}

func TestFormSubmitRejectedAfterSuccess(t *testing.T) {
	submitter := leads.SubmitterFunc(func(context.Context, leads.Submission) error {
		return nil
	})
	form := leads.NewForm("project-1", submitter, "")
	form.SetEmail("a@b.com")

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := form.Submit(context.Background()); !errors.Is(err, leads.ErrFormBusy) {
		t.Fatalf("expected ErrFormBusy on re-submit, got %v", err)
	}
}

func TestFormResetClearsFields(t *testing.T) {
	submitter := leads.SubmitterFunc(func(context.Context, leads.Submission) error {
		return nil
	})
	form := leads.NewForm("project-1", submitter, "")
	form.SetEmail("a@b.com")
	form.SetName("Ada")

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	form.Reset()

	if form.State() != leads.StateIdle {
		t.Fatalf("expected state IDLE after reset, got %s", form.State())
	}
	name, email, _, _ := form.Values()
	if name != "" || email != "" {
		t.Fatalf("expected fields cleared after reset, got %q %q", name, email)
	}
}
