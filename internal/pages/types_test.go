package pages_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-funnel/internal/pages"
)

func basePage() pages.PageDocument {
	return pages.PageDocument{
		HeroHeadline: "Scale Your Business",
		HeroSubhead:  "A proven playbook.",
		CTAText:      "Get Started",
	}
}

func TestValidateMandatoryHeroFields(t *testing.T) {
	doc := basePage()
	if err := doc.Validate(); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	doc.CTAText = ""
	if err := doc.Validate(); !errors.Is(err, pages.ErrPageDocumentInvalid) {
		t.Fatalf("expected ErrPageDocumentInvalid got %v", err)
	}
}

func TestSectionPresence(t *testing.T) {
	doc := basePage()
	if doc.HasProblem() || doc.HasSolution() || doc.HasFeatures() || doc.HasBio() ||
		doc.HasPricing() || doc.HasTestimonials() || doc.HasFAQ() || doc.HasUrgency() {
		t.Fatal("empty optional fields must suppress sections")
	}

	doc.FAQ = []pages.FAQEntry{}
	if doc.HasFAQ() {
		t.Fatal("empty FAQ list must suppress the section")
	}

	doc.Problem = "  "
	if doc.HasProblem() {
		t.Fatal("whitespace-only problem must suppress the section")
	}

	doc.Urgency = &pages.UrgencySetting{Enabled: true, BannerText: ""}
	if doc.HasUrgency() {
		t.Fatal("enabled banner with empty text must suppress the banner")
	}

	doc.Urgency = &pages.UrgencySetting{Enabled: true, BannerText: "Doors Close Soon"}
	if !doc.HasUrgency() {
		t.Fatal("enabled banner with text must render")
	}
}

func TestCloneIsolation(t *testing.T) {
	doc := basePage()
	doc.Features = []string{"A", "B"}
	doc.Pricing = []pages.PricingTier{{Name: "Basic", Price: "$29", Features: []string{"X"}}}
	doc.CoachBio = &pages.CoachBio{Name: "Coach", Headline: "Founder", Story: "Story"}

	cloned := doc.Clone()
	cloned.Features[0] = "mutated"
	cloned.Pricing[0].Features[0] = "mutated"
	cloned.CoachBio.Name = "mutated"

	if doc.Features[0] != "A" {
		t.Fatal("clone leaked feature mutation")
	}
	if doc.Pricing[0].Features[0] != "X" {
		t.Fatal("clone leaked pricing mutation")
	}
	if doc.CoachBio.Name != "Coach" {
		t.Fatal("clone leaked bio mutation")
	}
}
