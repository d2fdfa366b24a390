package markdown_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-funnel/internal/markdown"
)

const sampleSource = `---
heroHeadline: Get Fit in 90 Days
heroSubhead: A coaching program that meets you where you are.
ctaText: Book a Free Call
features:
  - Weekly check-ins
  - Custom meal plans
coachBio:
  name: Jamie Rivera
  headline: Certified strength coach
pricing:
  - name: Starter
    price: "$99/mo"
    features:
      - 1 session per week
faq:
  - question: Do I need a gym membership?
    answer: No, every program has a home variant.
urgency:
  enabled: true
  bannerText: Only 5 spots left this month
  spotsLeft: 5
---

## Problem

Most programs assume you already *love* training.

## Solution

We build the habit first, then the intensity.

## Coach Story

Jamie spent ten years coaching beginners.

## Random Section

This heading is not recognized and should be dropped.
`

func TestImporterImport(t *testing.T) {
	importer := markdown.NewImporter(nil)

	doc, err := importer.Import([]byte(sampleSource))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if doc.HeroHeadline != "Get Fit in 90 Days" {
		t.Fatalf("unexpected headline %q", doc.HeroHeadline)
	}
	if doc.CTAText != "Book a Free Call" {
		t.Fatalf("unexpected cta %q", doc.CTAText)
	}
	if len(doc.Features) != 2 || doc.Features[1] != "Custom meal plans" {
		t.Fatalf("unexpected features %v", doc.Features)
	}
	if len(doc.Pricing) != 1 || doc.Pricing[0].Price != "$99/mo" {
		t.Fatalf("unexpected pricing %v", doc.Pricing)
	}
	if !doc.HasUrgency() || doc.Urgency.SpotsLeft != 5 {
		t.Fatalf("unexpected urgency %+v", doc.Urgency)
	}

	if !strings.Contains(doc.Problem, "<em>love</em>") {
		t.Fatalf("expected rendered problem HTML, got %q", doc.Problem)
	}
	if !strings.Contains(doc.Solution, "habit first") {
		t.Fatalf("expected solution section, got %q", doc.Solution)
	}
	if doc.CoachBio == nil || !strings.Contains(doc.CoachBio.Story, "ten years") {
		t.Fatalf("expected coach story from body, got %+v", doc.CoachBio)
	}
}

func TestImporterRejectsMissingHero(t *testing.T) {
	importer := markdown.NewImporter(nil)

	source := "---\nheroHeadline: Only a headline\n---\n\nbody\n"
	_, err := importer.Import([]byte(source))
	if !errors.Is(err, markdown.ErrImportInvalid) {
		t.Fatalf("expected ErrImportInvalid, got %v", err)
	}
}

func TestImporterEscapesRawHTML(t *testing.T) {
	importer := markdown.NewImporter(nil)

	source := `---
heroHeadline: H
heroSubhead: S
ctaText: C
---

## Problem

<script>alert(1)</script>
`
	doc, err := importer.Import([]byte(source))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if strings.Contains(doc.Problem, "<script>") {
		t.Fatalf("expected raw HTML escaped, got %q", doc.Problem)
	}
}

func TestParserRenderMarkdown(t *testing.T) {
	parser := markdown.NewParser()

	out, err := parser.Render([]byte("a **bold** claim"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "<strong>bold</strong>") {
		t.Fatalf("unexpected output %q", out)
	}
}
