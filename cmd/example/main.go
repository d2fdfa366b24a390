package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	urlkit "github.com/goliatone/go-urlkit"

	funnel "github.com/goliatone/go-funnel"
	"github.com/goliatone/go-funnel/internal/blocks"
)

func main() {
	ctx := context.Background()

	outputDir := filepath.Join(os.TempDir(), "go-funnel-example")

	cfg := funnel.DefaultConfig()
	cfg.Generator.OutputDir = outputDir
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

	module, err := funnel.New(cfg)
	if err != nil {
		log.Fatalf("new funnel module: %v", err)
	}

	projectID := "proj_demo"

	created, err := module.Funnels().Create(ctx, funnel.CreateFunnelInput{
		ProjectID: projectID,
		Name:      "90 Day Transformation",
		Vertical:  "FITNESS_OS",
	})
	if err != nil {
		log.Fatalf("create funnel: %v", err)
	}
	fmt.Printf("created funnel %s (slug %s, vertical %s)\n", created.ID, created.Slug, created.Vertical)

	store := funnel.NewDocumentStore()
	if _, err := store.Add(blocks.TypeHero); err != nil {
		log.Fatalf("add hero block: %v", err)
	}
	if _, err := store.Add(blocks.TypeFeatures); err != nil {
		log.Fatalf("add features block: %v", err)
	}

	doc := store.Snapshot()
	if _, err := module.Funnels().UpdateDocument(ctx, created.ID, doc); err != nil {
		log.Fatalf("update document: %v", err)
	}

	canvas := funnel.NewCanvas()
	preview, err := canvas.RenderDocument(doc)
	if err != nil {
		log.Fatalf("render canvas: %v", err)
	}
	fmt.Printf("canvas preview: %d bytes\n", len(preview))

	published, err := module.Funnels().Publish(ctx, created.ID)
	if err != nil {
		log.Fatalf("publish funnel: %v", err)
	}
	fmt.Printf("published %s -> %s\n", created.Slug, published.PublishedURL)
	fmt.Printf("artifact written under %s\n", outputDir)

	form := module.NewLeadForm(projectID, "public_page")
	form.SetName("Jordan Walker")
	form.SetEmail("jordan@example.com")
	if err := form.Submit(ctx); err != nil {
		log.Fatalf("submit lead: %v", err)
	}
	fmt.Printf("lead form state: %s\n", form.State())

	plan, err := module.Growth().ContentPlan(ctx, "online fitness coaching", 7)
	if err != nil {
		log.Fatalf("content plan: %v", err)
	}
	fmt.Printf("content plan: %d posts\n", len(plan))
}
