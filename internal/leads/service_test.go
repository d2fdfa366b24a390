package leads_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-funnel/internal/leads"
	"github.com/google/uuid"
)

type recordingNotifier struct {
	captured []*leads.InboundLead
	err      error
}

func (n *recordingNotifier) LeadCaptured(_ context.Context, lead *leads.InboundLead) error {
	n.captured = append(n.captured, lead)
	return n.err
}

func TestServiceCapturePersistsLead(t *testing.T) {
	repo := leads.NewMemoryRepository()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.New()
	notifier := &recordingNotifier{}

	svc := leads.NewService(repo,
		leads.WithClock(func() time.Time { return fixed }),
		leads.WithIDGenerator(func() uuid.UUID { return id }),
		leads.WithNotifier(notifier),
	)

	lead, err := svc.Capture(context.Background(), leads.Submission{
		ProjectID: "project-1",
		Email:     "a@b.com",
		Name:      "Ada",
	})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if lead.ID != id {
		t.Fatalf("expected generated id %s, got %s", id, lead.ID)
	}
	if !lead.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at %s, got %s", fixed, lead.CreatedAt)
	}
	if lead.Source != "public_page" {
		t.Fatalf("expected default source public_page, got %q", lead.Source)
	}

	stored, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Email != "a@b.com" {
		t.Fatalf("expected stored email a@b.com, got %q", stored.Email)
	}

	if len(notifier.captured) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.captured))
	}
}

func TestServiceCaptureRejectsInvalidSubmission(t *testing.T) {
	svc := leads.NewService(leads.NewMemoryRepository())

	_, err := svc.Capture(context.Background(), leads.Submission{
		ProjectID: "project-1",
		Email:     "not-an-email",
	})
	if !errors.Is(err, leads.ErrSubmissionInvalid) {
		t.Fatalf("expected ErrSubmissionInvalid, got %v", err)
	}

	_, err = svc.Capture(context.Background(), leads.Submission{Email: "a@b.com"})
	if !errors.Is(err, leads.ErrSubmissionInvalid) {
		t.Fatalf("expected ErrSubmissionInvalid for missing project, got %v", err)
	}
}

func TestServiceCaptureSurvivesNotifierFailure(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("webhook down")}
	svc := leads.NewService(leads.NewMemoryRepository(), leads.WithNotifier(notifier))

	lead, err := svc.Capture(context.Background(), leads.Submission{
		ProjectID: "project-1",
		Email:     "a@b.com",
	})
	if err != nil {
		t.Fatalf("expected capture to succeed despite notifier failure, got %v", err)
	}
	if lead == nil {
		t.Fatal("expected captured lead")
	}
}

func TestServiceListByProject(t *testing.T) {
	repo := leads.NewMemoryRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc := leads.NewService(repo, leads.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}))

	for _, email := range []string{"a@b.com", "c@d.com"} {
		if _, err := svc.Capture(context.Background(), leads.Submission{
			ProjectID: "project-1",
			Email:     email,
		}); err != nil {
			t.Fatalf("Capture(%s): %v", email, err)
		}
	}
	if _, err := svc.Capture(context.Background(), leads.Submission{
		ProjectID: "project-2",
		Email:     "e@f.com",
	}); err != nil {
		t.Fatalf("Capture: %v", err)
	}

	listed, err := svc.List(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 leads for project-1, got %d", len(listed))
	}
	if listed[0].Email != "c@d.com" {
		t.Fatalf("expected newest lead first, got %q", listed[0].Email)
	}
}

func TestMemoryRepositoryGetMissing(t *testing.T) {
	repo := leads.NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())
	var notFound *leads.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
