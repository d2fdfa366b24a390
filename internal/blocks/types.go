package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Type identifies the closed set of authoring block kinds.
type Type string

const (
	TypeHero         Type = "HERO"
	TypeFeatures     Type = "FEATURES"
	TypePricing      Type = "PRICING"
	TypeCTA          Type = "CTA"
	TypeTestimonials Type = "TESTIMONIALS"
	TypeFAQ          Type = "FAQ"
)

// Types lists every registered block type in a stable order.
func Types() []Type {
	return []Type{TypeHero, TypeFeatures, TypePricing, TypeCTA, TypeTestimonials, TypeFAQ}
}

// Valid reports whether the type belongs to the registered set.
func (t Type) Valid() bool {
	switch t {
	case TypeHero, TypeFeatures, TypePricing, TypeCTA, TypeTestimonials, TypeFAQ:
		return true
	}
	return false
}

var (
	ErrUnknownBlockType     = errors.New("blocks: unknown block type")
	ErrContentKindMismatch  = errors.New("blocks: patch kind does not match block content")
	ErrContentDecodeFailure = errors.New("blocks: content payload cannot be decoded")
)

// Content is the tagged union of per-type block payloads. Each variant carries
// the strongly typed record its editor mutates; consumers switch exhaustively
// on BlockType and treat anything else as the unknown-type fallback.
type Content interface {
	BlockType() Type
	Clone() Content
}

// FeatureItem is one entry in a FEATURES block.
type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
}

// PricingPlan is one tier in a PRICING block.
type PricingPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// HeroContent is the payload for HERO blocks.
type HeroContent struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
	Image       string `json:"image"`
}

func (HeroContent) BlockType() Type { return TypeHero }

func (c HeroContent) Clone() Content { return c }

// FeaturesContent is the payload for FEATURES blocks.
type FeaturesContent struct {
	Title    string        `json:"title"`
	Features []FeatureItem `json:"features"`
}

func (FeaturesContent) BlockType() Type { return TypeFeatures }

func (c FeaturesContent) Clone() Content {
	cloned := c
	cloned.Features = append([]FeatureItem(nil), c.Features...)
	return cloned
}

// PricingContent is the payload for PRICING blocks.
type PricingContent struct {
	Title string        `json:"title"`
	Plans []PricingPlan `json:"plans"`
}

func (PricingContent) BlockType() Type { return TypePricing }

func (c PricingContent) Clone() Content {
	cloned := c
	cloned.Plans = make([]PricingPlan, len(c.Plans))
	for i, plan := range c.Plans {
		plan.Features = append([]string(nil), plan.Features...)
		cloned.Plans[i] = plan
	}
	return cloned
}

// CTAContent is the payload for CTA blocks. No dedicated editor exists yet.
type CTAContent struct{}

func (CTAContent) BlockType() Type  { return TypeCTA }
func (c CTAContent) Clone() Content { return c }

// TestimonialsContent is the payload for TESTIMONIALS blocks. No dedicated editor exists yet.
type TestimonialsContent struct{}

func (TestimonialsContent) BlockType() Type  { return TypeTestimonials }
func (c TestimonialsContent) Clone() Content { return c }

// FAQContent is the payload for FAQ blocks. No dedicated editor exists yet.
type FAQContent struct{}

func (FAQContent) BlockType() Type  { return TypeFAQ }
func (c FAQContent) Clone() Content { return c }

// Decode rebuilds a typed content value from its persisted JSON payload.
func Decode(t Type, raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	switch t {
	case TypeHero:
		var c HeroContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentDecodeFailure, err)
		}
		return c, nil
	case TypeFeatures:
		var c FeaturesContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentDecodeFailure, err)
		}
		return c, nil
	case TypePricing:
		var c PricingContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentDecodeFailure, err)
		}
		return c, nil
	case TypeCTA:
		return CTAContent{}, nil
	case TypeTestimonials:
		return TestimonialsContent{}, nil
	case TypeFAQ:
		return FAQContent{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, t)
	}
}

// Encode serializes typed content into the persisted JSON payload.
func Encode(content Content) (json.RawMessage, error) {
	if content == nil {
		return json.RawMessage("{}"), nil
	}
	encoded, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("blocks: encode %s content: %w", content.BlockType(), err)
	}
	return encoded, nil
}
