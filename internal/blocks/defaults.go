package blocks

// defaultHeroImage seeds new HERO blocks with a neutral placeholder photo.
const defaultHeroImage = "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?auto=format&fit=crop&w=1600&q=80"

// DefaultContent returns the seed payload used when a block of the given type
// is added to a document. Unknown types yield nil; callers are expected to
// reject them before insertion. The populated values are part of the authoring
// contract and must stay stable across releases.
func DefaultContent(t Type) Content {
	switch t {
	case TypeHero:
		return HeroContent{
			Headline:    "Transform Your Life Today",
			Subheadline: "The ultimate solution for your problems.",
			CTAText:     "Get Started",
			Image:       defaultHeroImage,
		}
	case TypeFeatures:
		return FeaturesContent{
			Title: "Why Choose Us",
			Features: []FeatureItem{
				{Title: "Feature 1", Description: "Description here"},
				{Title: "Feature 2", Description: "Description here"},
				{Title: "Feature 3", Description: "Description here"},
			},
		}
	case TypePricing:
		return PricingContent{
			Title: "Simple Pricing",
			Plans: []PricingPlan{
				{Name: "Basic", Price: "$29", Features: []string{"Feature A", "Feature B"}},
				{Name: "Pro", Price: "$99", Features: []string{"Everything in Basic", "Feature C"}},
			},
		}
	case TypeCTA:
		return CTAContent{}
	case TypeTestimonials:
		return TestimonialsContent{}
	case TypeFAQ:
		return FAQContent{}
	default:
		return nil
	}
}
