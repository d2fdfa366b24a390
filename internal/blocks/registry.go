package blocks

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-funnel/internal/identity"
	"github.com/goliatone/go-funnel/internal/validation"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// Definition describes a registered block type: its display name, slug, and
// the JSON schema its content payload must satisfy when a document is saved.
type Definition struct {
	ID     uuid.UUID
	Name   string
	Slug   string
	Type   Type
	Schema map[string]any
}

// Registry stores block definitions keyed by type. It seeds the builtin set on
// construction; hosts can replace schemas for custom deployments.
type Registry struct {
	mu      sync.RWMutex
	entries map[Type]Definition
}

// NewRegistry constructs a registry pre-populated with the builtin block set.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[Type]Definition)}
	for _, def := range builtinDefinitions() {
		r.Register(def)
	}
	return r
}

// Register records a definition, deriving the slug and deterministic ID from
// the name when they are unset. Entries with blank names are ignored.
func (r *Registry) Register(def Definition) {
	if r == nil {
		return
	}
	name := strings.TrimSpace(def.Name)
	if name == "" || !def.Type.Valid() {
		return
	}
	def.Name = name
	if def.Slug == "" {
		if normalized, err := slug.Normalize(name); err == nil {
			def.Slug = normalized
		}
	}
	if def.ID == uuid.Nil {
		def.ID = identity.BlockDefinitionUUID(name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[def.Type] = def
}

// Get returns the definition registered for a type.
func (r *Registry) Get(t Type) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.entries[t]
	return def, ok
}

// List returns definitions in the canonical type order.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.entries))
	for _, t := range Types() {
		if def, ok := r.entries[t]; ok {
			defs = append(defs, def)
		}
	}
	return defs
}

// ValidateContent checks typed content against the registered JSON schema for
// its block type. Types without a schema validate trivially.
func (r *Registry) ValidateContent(content Content) error {
	if content == nil {
		return ErrUnknownBlockType
	}
	def, ok := r.Get(content.BlockType())
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBlockType, content.BlockType())
	}
	if len(def.Schema) == 0 {
		return nil
	}

	encoded, err := Encode(content)
	if err != nil {
		return err
	}
	payload := map[string]any{}
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrContentDecodeFailure, err)
	}
	return validation.ValidatePayload(def.Schema, payload)
}

func builtinDefinitions() []Definition {
	return []Definition{
		{
			Name: "Hero",
			Type: TypeHero,
			Schema: map[string]any{
				"type":     "object",
				"required": []any{"headline", "subheadline", "ctaText"},
				"properties": map[string]any{
					"headline":    map[string]any{"type": "string", "minLength": 1},
					"subheadline": map[string]any{"type": "string"},
					"ctaText":     map[string]any{"type": "string", "minLength": 1},
					"image":       map[string]any{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
		{
			Name: "Features",
			Type: TypeFeatures,
			Schema: map[string]any{
				"type":     "object",
				"required": []any{"title"},
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"features": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title": map[string]any{"type": "string"},
								"desc":  map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
		{
			Name: "Pricing",
			Type: TypePricing,
			Schema: map[string]any{
				"type":     "object",
				"required": []any{"title"},
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"plans": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"name", "price"},
							"properties": map[string]any{
								"name":  map[string]any{"type": "string"},
								"price": map[string]any{"type": "string"},
								"features": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
		{Name: "Call To Action", Type: TypeCTA},
		{Name: "Testimonials", Type: TypeTestimonials},
		{Name: "FAQ", Type: TypeFAQ},
	}
}
