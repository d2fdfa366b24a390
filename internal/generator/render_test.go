package generator_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-funnel/internal/generator"
	"github.com/goliatone/go-funnel/internal/pages"
)

func fullDocument() *pages.PageDocument {
	return &pages.PageDocument{
		HeroHeadline: "Get Fit in 90 Days",
		HeroSubhead:  "A coaching program that meets you where you are.",
		CTAText:      "Book a Free Call",
		Problem:      "<p>You keep starting over.</p>",
		Solution:     "<p>We build the habit first.</p>",
		Features:     []string{"Weekly check-ins", "Custom meal plans"},
		CoachBio: &pages.CoachBio{
			Name:     "Jamie Rivera",
			Headline: "Certified strength coach",
			Story:    "<p>Ten years coaching beginners.</p>",
		},
		Pricing: []pages.PricingTier{
			{Name: "Starter", Price: "$99/mo", Features: []string{"1 session per week"}},
		},
		Testimonials: []pages.Testimonial{
			{Name: "Sam", Result: "Lost 20 lbs", Quote: "Best decision I made."},
		},
		FAQ: []pages.FAQEntry{
			{Question: "Do I need a gym?", Answer: "No."},
		},
		Urgency: &pages.UrgencySetting{Enabled: true, BannerText: "Only 5 spots left", SpotsLeft: 5},
	}
}

func TestRenderPageFullDocument(t *testing.T) {
	renderer := generator.NewPageRenderer()

	html, err := renderer.RenderPage(fullDocument(), generator.RenderContext{
		ProjectID:  "project-1",
		FormAction: "/api/leads",
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	for _, want := range []string{
		"<h1>Get Fit in 90 Days</h1>",
		"Book a Free Call",
		"class=\"urgency-banner\"",
		"Only 5 spots left",
		"You keep starting over.",
		"Meet Jamie Rivera",
		"$99/mo",
		"Best decision I made.",
		"class=\"faq\"",
		"Do I need a gym?",
		"name=\"projectId\" value=\"project-1\"",
		"action=\"/api/leads\"",
		"name=\"email\"",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestRenderPageOmitsEmptySections(t *testing.T) {
	renderer := generator.NewPageRenderer()

	doc := &pages.PageDocument{
		HeroHeadline: "H",
		HeroSubhead:  "S",
		CTAText:      "C",
		FAQ:          []pages.FAQEntry{},
	}

	html, err := renderer.RenderPage(doc, generator.RenderContext{ProjectID: "p"})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	for _, absent := range []string{
		"class=\"faq\"",
		"class=\"problem\"",
		"class=\"pricing\"",
		"class=\"testimonials\"",
		"class=\"coach-bio\"",
		"class=\"urgency-banner\"",
	} {
		if strings.Contains(html, absent) {
			t.Fatalf("expected empty section wrapper %q to be omitted", absent)
		}
	}
	if !strings.Contains(html, "<h1>H</h1>") {
		t.Fatal("expected hero to render")
	}
}

func TestRenderPageDisabledUrgencyIsHidden(t *testing.T) {
	renderer := generator.NewPageRenderer()

	doc := fullDocument()
	doc.Urgency.Enabled = false

	html, err := renderer.RenderPage(doc, generator.RenderContext{ProjectID: "p"})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if strings.Contains(html, "urgency-banner") {
		t.Fatal("expected disabled urgency banner to be omitted")
	}
}

func TestRenderPageRejectsInvalidDocument(t *testing.T) {
	renderer := generator.NewPageRenderer()

	_, err := renderer.RenderPage(&pages.PageDocument{HeroHeadline: "only"}, generator.RenderContext{})
	if err == nil {
		t.Fatal("expected error for document missing mandatory fields")
	}
}

func TestRenderPageEscapesFieldValues(t *testing.T) {
	renderer := generator.NewPageRenderer()

	doc := &pages.PageDocument{
		HeroHeadline: "<script>alert(1)</script>",
		HeroSubhead:  "S",
		CTAText:      "C",
	}

	html, err := renderer.RenderPage(doc, generator.RenderContext{ProjectID: "p"})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("expected headline to be escaped")
	}
}

func TestRenderPageNarrativeFieldsAreTrustedHTML(t *testing.T) {
	renderer := generator.NewPageRenderer()

	doc := &pages.PageDocument{
		HeroHeadline: "H",
		HeroSubhead:  "S",
		CTAText:      "C",
		Problem:      "<p>Leads <em>vanish</em>.</p>",
		Solution:     "<p>&lt;b&gt;escaped upstream&lt;/b&gt;</p>",
	}

	html, err := renderer.RenderPage(doc, generator.RenderContext{ProjectID: "p"})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(html, "<p>Leads <em>vanish</em>.</p>") {
		t.Fatal("expected problem markup emitted verbatim")
	}
	if !strings.Contains(html, "&lt;b&gt;escaped upstream&lt;/b&gt;") {
		t.Fatal("expected upstream-escaped solution preserved, not double-handled")
	}
}
