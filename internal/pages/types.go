package pages

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PageDocument is the flattened, section-based record consumed by the public
// page renderer. The mandatory trio (HeroHeadline, HeroSubhead, CTAText) is
// always rendered; every other field is optional and an absent or empty value
// suppresses its section entirely. Renderers treat the document as read-only.
type PageDocument struct {
	HeroHeadline string `json:"heroHeadline"`
	HeroSubhead  string `json:"heroSubhead"`
	CTAText      string `json:"ctaText"`

	// Problem, Solution, and CoachBio.Story carry pre-rendered HTML and are
	// emitted verbatim by the public page template. The Markdown importer
	// escapes raw HTML before filling them; callers that populate these
	// fields directly take on the same sanitization responsibility.
	Problem  string   `json:"problem,omitempty"`
	Solution string   `json:"solution,omitempty"`
	Features []string `json:"features,omitempty"`

	CoachBio     *CoachBio       `json:"coachBio,omitempty"`
	Pricing      []PricingTier   `json:"pricing,omitempty"`
	Testimonials []Testimonial   `json:"testimonials,omitempty"`
	FAQ          []FAQEntry      `json:"faq,omitempty"`
	Urgency      *UrgencySetting `json:"urgencySettings,omitempty"`

	PublishedURL string `json:"publishedUrl,omitempty"`
}

// CoachBio introduces the founder behind the offer.
type CoachBio struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Story    string `json:"story"`
}

// PricingTier is one purchasable tier on the public page.
type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// Testimonial is one social-proof entry.
type Testimonial struct {
	Name   string `json:"name"`
	Result string `json:"result"`
	Quote  string `json:"quote"`
}

// FAQEntry is one question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// UrgencySetting controls the optional scarcity banner above the hero.
type UrgencySetting struct {
	Enabled    bool   `json:"enabled"`
	BannerText string `json:"bannerText"`
	SpotsLeft  int    `json:"spotsLeft,omitempty"`
}

// ErrPageDocumentInvalid wraps validation failures for page documents.
var ErrPageDocumentInvalid = errors.New("pages: page document invalid")

// Validate enforces the mandatory hero fields. Optional sections are free to
// be absent; list entries must not be blank records when present.
func (d PageDocument) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.HeroHeadline, validation.Required),
		validation.Field(&d.HeroSubhead, validation.Required),
		validation.Field(&d.CTAText, validation.Required),
	)
	if err != nil {
		return errors.Join(ErrPageDocumentInvalid, err)
	}
	return nil
}

// HasProblem reports whether the problem section should render.
func (d PageDocument) HasProblem() bool { return strings.TrimSpace(d.Problem) != "" }

// HasSolution reports whether the solution statement should render.
func (d PageDocument) HasSolution() bool { return strings.TrimSpace(d.Solution) != "" }

// HasFeatures reports whether the features grid should render.
func (d PageDocument) HasFeatures() bool { return len(d.Features) > 0 }

// HasBio reports whether the coach bio section should render.
func (d PageDocument) HasBio() bool { return d.CoachBio != nil && strings.TrimSpace(d.CoachBio.Name) != "" }

// HasPricing reports whether the pricing section should render.
func (d PageDocument) HasPricing() bool { return len(d.Pricing) > 0 }

// HasTestimonials reports whether the testimonials section should render.
func (d PageDocument) HasTestimonials() bool { return len(d.Testimonials) > 0 }

// HasFAQ reports whether the FAQ section should render.
func (d PageDocument) HasFAQ() bool { return len(d.FAQ) > 0 }

// HasUrgency reports whether the urgency banner should render.
func (d PageDocument) HasUrgency() bool {
	return d.Urgency != nil && d.Urgency.Enabled && strings.TrimSpace(d.Urgency.BannerText) != ""
}

// Clone returns a deep copy so callers can customize a template without
// mutating the shared seed.
func (d PageDocument) Clone() PageDocument {
	cloned := d
	cloned.Features = append([]string(nil), d.Features...)
	if d.CoachBio != nil {
		bio := *d.CoachBio
		cloned.CoachBio = &bio
	}
	if d.Pricing != nil {
		cloned.Pricing = make([]PricingTier, len(d.Pricing))
		for i, tier := range d.Pricing {
			tier.Features = append([]string(nil), tier.Features...)
			cloned.Pricing[i] = tier
		}
	}
	cloned.Testimonials = append([]Testimonial(nil), d.Testimonials...)
	cloned.FAQ = append([]FAQEntry(nil), d.FAQ...)
	if d.Urgency != nil {
		urgency := *d.Urgency
		cloned.Urgency = &urgency
	}
	return cloned
}
