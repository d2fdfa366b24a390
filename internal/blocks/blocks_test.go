package blocks_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/goliatone/go-funnel/internal/blocks"
)

func TestDefaultContentHero(t *testing.T) {
	content := blocks.DefaultContent(blocks.TypeHero)
	hero, ok := content.(blocks.HeroContent)
	if !ok {
		t.Fatalf("expected HeroContent got %T", content)
	}
	if hero.Headline != "Transform Your Life Today" {
		t.Fatalf("unexpected headline %q", hero.Headline)
	}
	if hero.Subheadline != "The ultimate solution for your problems." {
		t.Fatalf("unexpected subheadline %q", hero.Subheadline)
	}
	if hero.CTAText != "Get Started" {
		t.Fatalf("unexpected cta %q", hero.CTAText)
	}
	if hero.Image == "" {
		t.Fatal("expected placeholder image URL")
	}
}

func TestDefaultContentPricing(t *testing.T) {
	content := blocks.DefaultContent(blocks.TypePricing)
	pricing, ok := content.(blocks.PricingContent)
	if !ok {
		t.Fatalf("expected PricingContent got %T", content)
	}
	if pricing.Title != "Simple Pricing" {
		t.Fatalf("unexpected title %q", pricing.Title)
	}
	if len(pricing.Plans) != 2 {
		t.Fatalf("expected 2 plans got %d", len(pricing.Plans))
	}
	if pricing.Plans[0].Name != "Basic" || pricing.Plans[0].Price != "$29" {
		t.Fatalf("unexpected first plan %+v", pricing.Plans[0])
	}
	if pricing.Plans[1].Name != "Pro" || pricing.Plans[1].Price != "$99" {
		t.Fatalf("unexpected second plan %+v", pricing.Plans[1])
	}
	if len(pricing.Plans[1].Features) != 2 || pricing.Plans[1].Features[0] != "Everything in Basic" {
		t.Fatalf("unexpected pro features %v", pricing.Plans[1].Features)
	}
}

func TestDefaultContentEmptyTypes(t *testing.T) {
	for _, typ := range []blocks.Type{blocks.TypeCTA, blocks.TypeTestimonials, blocks.TypeFAQ} {
		content := blocks.DefaultContent(typ)
		if content == nil {
			t.Fatalf("expected empty content for %s got nil", typ)
		}
		encoded, err := blocks.Encode(content)
		if err != nil {
			t.Fatalf("encode %s: %v", typ, err)
		}
		if string(encoded) != "{}" {
			t.Fatalf("expected empty payload for %s got %s", typ, encoded)
		}
	}
}

func TestDefaultContentUnknownType(t *testing.T) {
	if content := blocks.DefaultContent(blocks.Type("UNKNOWN")); content != nil {
		t.Fatalf("expected nil content for unknown type got %T", content)
	}
}

func TestApplyShallowMerge(t *testing.T) {
	hero := blocks.DefaultContent(blocks.TypeHero).(blocks.HeroContent)

	headline := "New Headline"
	merged, err := blocks.Apply(hero, blocks.HeroPatch{Headline: &headline})
	if err != nil {
		t.Fatalf("apply patch: %v", err)
	}

	updated := merged.(blocks.HeroContent)
	if updated.Headline != "New Headline" {
		t.Fatalf("expected patched headline got %q", updated.Headline)
	}
	if updated.CTAText != "Get Started" {
		t.Fatalf("expected cta preserved got %q", updated.CTAText)
	}
	if updated.Subheadline != hero.Subheadline {
		t.Fatalf("expected subheadline preserved got %q", updated.Subheadline)
	}
}

func TestApplyPointerPatch(t *testing.T) {
	hero := blocks.DefaultContent(blocks.TypeHero).(blocks.HeroContent)

	headline := "Pointer Headline"
	merged, err := blocks.Apply(hero, &blocks.HeroPatch{Headline: &headline})
	if err != nil {
		t.Fatalf("apply pointer patch: %v", err)
	}
	if got := merged.(blocks.HeroContent).Headline; got != "Pointer Headline" {
		t.Fatalf("expected patched headline got %q", got)
	}

	pricing := blocks.DefaultContent(blocks.TypePricing).(blocks.PricingContent)
	title := "Pointer Pricing"
	merged, err = blocks.Apply(pricing, &blocks.PricingPatch{Title: &title})
	if err != nil {
		t.Fatalf("apply pointer pricing patch: %v", err)
	}
	if got := merged.(blocks.PricingContent).Title; got != "Pointer Pricing" {
		t.Fatalf("expected patched title got %q", got)
	}

	if _, err := blocks.Apply(hero, &blocks.PricingPatch{Title: &title}); !errors.Is(err, blocks.ErrContentKindMismatch) {
		t.Fatalf("expected ErrContentKindMismatch got %v", err)
	}
}

func TestApplyNilPointerPatchIsNoOp(t *testing.T) {
	hero := blocks.DefaultContent(blocks.TypeHero).(blocks.HeroContent)

	merged, err := blocks.Apply(hero, (*blocks.HeroPatch)(nil))
	if err != nil {
		t.Fatalf("apply nil pointer patch: %v", err)
	}
	if merged.(blocks.HeroContent) != hero {
		t.Fatalf("expected content unchanged")
	}
}

func TestApplyKindMismatch(t *testing.T) {
	hero := blocks.DefaultContent(blocks.TypeHero)
	title := "Oops"
	if _, err := blocks.Apply(hero, blocks.PricingPatch{Title: &title}); !errors.Is(err, blocks.ErrContentKindMismatch) {
		t.Fatalf("expected ErrContentKindMismatch got %v", err)
	}
}

func TestApplyDoesNotMutateOriginalLists(t *testing.T) {
	features := blocks.DefaultContent(blocks.TypeFeatures).(blocks.FeaturesContent)

	replacement := []blocks.FeatureItem{{Title: "Only One", Description: "Kept"}}
	merged, err := blocks.Apply(features, blocks.FeaturesPatch{Features: replacement})
	if err != nil {
		t.Fatalf("apply patch: %v", err)
	}

	if len(features.Features) != 3 {
		t.Fatalf("original list mutated, len=%d", len(features.Features))
	}
	if got := merged.(blocks.FeaturesContent).Features; len(got) != 1 || got[0].Title != "Only One" {
		t.Fatalf("unexpected merged features %v", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := blocks.DefaultContent(blocks.TypePricing)
	encoded, err := blocks.Encode(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := blocks.Decode(blocks.TypePricing, encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.(blocks.PricingContent).Plans[0].Name != "Basic" {
		t.Fatalf("round trip lost plan data: %+v", decoded)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	if _, err := blocks.Decode(blocks.Type("UNKNOWN"), json.RawMessage(`{}`)); !errors.Is(err, blocks.ErrUnknownBlockType) {
		t.Fatalf("expected ErrUnknownBlockType got %v", err)
	}
}

func TestResolveEditorSupported(t *testing.T) {
	editor := blocks.ResolveEditor(blocks.TypeHero)
	if !editor.Supported {
		t.Fatal("expected HERO editor to be supported")
	}
	if len(editor.Fields) != 4 {
		t.Fatalf("expected 4 hero fields got %d", len(editor.Fields))
	}
	if editor.Fields[0].Name != "headline" || editor.Fields[0].Kind != blocks.FieldText {
		t.Fatalf("unexpected first field %+v", editor.Fields[0])
	}
}

func TestResolveEditorFallback(t *testing.T) {
	for _, typ := range []blocks.Type{blocks.TypeCTA, blocks.TypeTestimonials, blocks.TypeFAQ, blocks.Type("UNKNOWN")} {
		editor := blocks.ResolveEditor(typ)
		if editor.Supported {
			t.Fatalf("expected unsupported editor for %s", typ)
		}
		if editor.Type != typ {
			t.Fatalf("expected editor to echo type %s got %s", typ, editor.Type)
		}
	}
}

func TestRegistryValidateContent(t *testing.T) {
	registry := blocks.NewRegistry()

	if err := registry.ValidateContent(blocks.DefaultContent(blocks.TypeHero)); err != nil {
		t.Fatalf("default hero should satisfy its schema: %v", err)
	}

	invalid := blocks.HeroContent{Subheadline: "missing headline and cta"}
	if err := registry.ValidateContent(invalid); err == nil {
		t.Fatal("expected validation failure for empty headline")
	}
}

func TestRegistryListOrder(t *testing.T) {
	registry := blocks.NewRegistry()
	defs := registry.List()
	if len(defs) != 6 {
		t.Fatalf("expected 6 builtin definitions got %d", len(defs))
	}
	if defs[0].Type != blocks.TypeHero || defs[0].Slug != "hero" {
		t.Fatalf("unexpected first definition %+v", defs[0])
	}
}
