package blocks

import "fmt"

// Patch carries a partial content update for a single block type. Nil fields
// are "absent" and leave the prior value untouched; the merge is shallow and
// left-biased exactly like the authoring editors expect.
type Patch interface {
	PatchType() Type
}

// HeroPatch updates a subset of HERO fields.
type HeroPatch struct {
	Headline    *string
	Subheadline *string
	CTAText     *string
	Image       *string
}

func (HeroPatch) PatchType() Type { return TypeHero }

// FeaturesPatch updates a subset of FEATURES fields. A non-nil Features slice
// replaces the list wholesale; merging is shallow by design.
type FeaturesPatch struct {
	Title    *string
	Features []FeatureItem
}

func (FeaturesPatch) PatchType() Type { return TypeFeatures }

// PricingPatch updates a subset of PRICING fields. A non-nil Plans slice
// replaces the list wholesale.
type PricingPatch struct {
	Title *string
	Plans []PricingPlan
}

func (PricingPatch) PatchType() Type { return TypePricing }

// normalizePatch maps pointer patches onto their value forms so Apply can
// switch on a single representation. A typed nil pointer collapses to nil.
func normalizePatch(patch Patch) Patch {
	switch p := patch.(type) {
	case *HeroPatch:
		if p == nil {
			return nil
		}
		return *p
	case *FeaturesPatch:
		if p == nil {
			return nil
		}
		return *p
	case *PricingPatch:
		if p == nil {
			return nil
		}
		return *p
	default:
		return patch
	}
}

// Apply merges a patch into existing content and returns the merged value.
// The patch kind must match the content kind; block type is immutable after
// creation, so a mismatch is surfaced as ErrContentKindMismatch instead of
// silently re-tagging the block. Pointer and value patches are both accepted.
func Apply(content Content, patch Patch) (Content, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: nil content", ErrContentKindMismatch)
	}
	patch = normalizePatch(patch)
	if patch == nil {
		return content.Clone(), nil
	}
	if content.BlockType() != patch.PatchType() {
		return nil, fmt.Errorf("%w: content %s, patch %s", ErrContentKindMismatch, content.BlockType(), patch.PatchType())
	}

	switch current := content.(type) {
	case HeroContent:
		p, ok := patch.(HeroPatch)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported patch %T for %s", ErrContentKindMismatch, patch, content.BlockType())
		}
		if p.Headline != nil {
			current.Headline = *p.Headline
		}
		if p.Subheadline != nil {
			current.Subheadline = *p.Subheadline
		}
		if p.CTAText != nil {
			current.CTAText = *p.CTAText
		}
		if p.Image != nil {
			current.Image = *p.Image
		}
		return current, nil
	case FeaturesContent:
		p, ok := patch.(FeaturesPatch)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported patch %T for %s", ErrContentKindMismatch, patch, content.BlockType())
		}
		merged := current.Clone().(FeaturesContent)
		if p.Title != nil {
			merged.Title = *p.Title
		}
		if p.Features != nil {
			merged.Features = append([]FeatureItem(nil), p.Features...)
		}
		return merged, nil
	case PricingContent:
		p, ok := patch.(PricingPatch)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported patch %T for %s", ErrContentKindMismatch, patch, content.BlockType())
		}
		merged := current.Clone().(PricingContent)
		if p.Title != nil {
			merged.Title = *p.Title
		}
		if p.Plans != nil {
			merged.Plans = append([]PricingPlan(nil), p.Plans...)
		}
		return merged, nil
	default:
		// CTA, TESTIMONIALS, and FAQ carry no editable fields yet; a matching
		// patch kind cannot exist for them.
		return nil, fmt.Errorf("%w: %s has no editable fields", ErrContentKindMismatch, content.BlockType())
	}
}
