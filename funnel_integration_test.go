package funnel_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	funnel "github.com/goliatone/go-funnel"
	"github.com/goliatone/go-funnel/internal/blocks"
	"github.com/goliatone/go-funnel/internal/di"
	"github.com/goliatone/go-funnel/internal/documents"
	"github.com/goliatone/go-funnel/internal/leads"
	"github.com/goliatone/go-funnel/pkg/storage"
	"github.com/goliatone/go-funnel/pkg/testsupport"
)

func newBunDB(t *testing.T) *bun.DB {
	t.Helper()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if err := storage.EnsureSchema(context.Background(), bunDB); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return bunDB
}

func TestModule_FunnelLifecycleWithBunAndCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bunDB := newBunDB(t)

	cfg := funnel.DefaultConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.DefaultTTL = 50 * time.Millisecond
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Themes.BasePath = ""
	cfg.Navigation.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "public",
				BaseURL: "https://pages.example.com",
				Paths: map[string]string{
					"page": "/p/:slug",
				},
			},
		},
	}

	module, err := funnel.New(cfg, di.WithBunDB(bunDB))
	if err != nil {
		t.Fatalf("new funnel module: %v", err)
	}

	funnelSvc := module.Funnels()
	projectID := "proj_integration"

	created, err := funnelSvc.Create(ctx, funnel.CreateFunnelInput{
		ProjectID: projectID,
		Name:      "Summer Launch",
		Vertical:  "AGENCY_OS",
	})
	if err != nil {
		t.Fatalf("create funnel: %v", err)
	}
	if created.Slug != "summer-launch" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if created.Page.HeroHeadline == "" {
		t.Fatalf("expected vertical template to seed the page")
	}

	doc := documents.Document{}
	doc.Blocks = append(doc.Blocks, documents.Block{
		ID:   uuid.New(),
		Type: blocks.TypeHero,
		Content: blocks.HeroContent{
			Headline: "Summer launch hero",
		},
	})
	if _, err := funnelSvc.UpdateDocument(ctx, created.ID, doc); err != nil {
		t.Fatalf("update document: %v", err)
	}

	reloaded, err := funnelSvc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("reload funnel: %v", err)
	}
	if len(reloaded.Document.Blocks) != 1 {
		t.Fatalf("expected persisted document block, got %d", len(reloaded.Document.Blocks))
	}

	published, err := funnelSvc.Publish(ctx, created.ID)
	if err != nil {
		t.Fatalf("publish funnel: %v", err)
	}
	if published.PublishedURL != "https://pages.example.com/p/summer-launch" {
		t.Fatalf("unexpected published url %q", published.PublishedURL)
	}
	if published.PublishedAt == nil {
		t.Fatalf("expected published timestamp")
	}

	artifact := filepath.Join(cfg.Generator.OutputDir, "summer-launch", "index.html")
	html, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("read published artifact: %v", err)
	}
	if !strings.Contains(string(html), published.Page.HeroHeadline) {
		t.Fatalf("expected hero headline in published page")
	}

	form := module.NewLeadForm(projectID, "public_page")
	form.SetEmail("prospect@example.com")
	form.SetName("Sam Prospect")
	if err := form.Submit(ctx); err != nil {
		t.Fatalf("submit lead form: %v", err)
	}
	if form.State() != leads.StateSubmitted {
		t.Fatalf("expected submitted state, got %v", form.State())
	}

	capturedLeads, err := module.Leads().List(ctx, projectID)
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if len(capturedLeads) != 1 {
		t.Fatalf("expected 1 captured lead, got %d", len(capturedLeads))
	}
	if capturedLeads[0].Email != "prospect@example.com" {
		t.Fatalf("unexpected lead email %q", capturedLeads[0].Email)
	}
}

func TestModule_MarkdownImportFeedsPublish(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg := funnel.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Themes.BasePath = ""

	module, err := funnel.New(cfg)
	if err != nil {
		t.Fatalf("new funnel module: %v", err)
	}

	source := strings.Join([]string{
		"---",
		"heroHeadline: Imported Landing",
		"heroSubhead: From a Markdown brief",
		"ctaText: Book a call",
		"features:",
		"  - Fast setup",
		"  - Weekly reporting",
		"---",
		"",
		"## Problem",
		"",
		"Leads slip through the cracks.",
		"",
		"## Solution",
		"",
		"One page that captures **every** inquiry.",
	}, "\n")

	page, err := module.Markdown().Import([]byte(source))
	if err != nil {
		t.Fatalf("import markdown: %v", err)
	}
	if page.HeroHeadline != "Imported Landing" {
		t.Fatalf("unexpected hero headline %q", page.HeroHeadline)
	}
	if !strings.Contains(page.Solution, "<strong>every</strong>") {
		t.Fatalf("expected rendered markdown in solution section")
	}

	created, err := module.Funnels().Create(ctx, funnel.CreateFunnelInput{
		ProjectID: "proj_markdown",
		Name:      "Imported Funnel",
	})
	if err != nil {
		t.Fatalf("create funnel: %v", err)
	}
	if _, err := module.Funnels().UpdatePage(ctx, created.ID, *page); err != nil {
		t.Fatalf("update page: %v", err)
	}

	published, err := module.Funnels().Publish(ctx, created.ID)
	if err != nil {
		t.Fatalf("publish funnel: %v", err)
	}
	if published.Page.HeroHeadline != "Imported Landing" {
		t.Fatalf("expected imported page to drive the published funnel")
	}
}
