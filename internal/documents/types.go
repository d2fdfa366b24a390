package documents

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-funnel/internal/blocks"
	"github.com/google/uuid"
)

// Block is a single content unit in the authoring document. The type tag is
// immutable for the block's lifetime; only Content changes through updates.
type Block struct {
	ID      uuid.UUID
	Type    blocks.Type
	Content blocks.Content
}

// Clone returns a deep copy safe to hand to renderers.
func (b Block) Clone() Block {
	cloned := b
	if b.Content != nil {
		cloned.Content = b.Content.Clone()
	}
	return cloned
}

type blockEnvelope struct {
	ID      uuid.UUID       `json:"id"`
	Type    blocks.Type     `json:"type"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes the block as the persisted {id, type, content} envelope.
func (b Block) MarshalJSON() ([]byte, error) {
	content, err := blocks.Encode(b.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockEnvelope{ID: b.ID, Type: b.Type, Content: content})
}

// UnmarshalJSON decodes the persisted envelope back into typed content.
func (b *Block) UnmarshalJSON(data []byte) error {
	var envelope blockEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("documents: decode block envelope: %w", err)
	}
	content, err := blocks.Decode(envelope.Type, envelope.Content)
	if err != nil {
		return err
	}
	b.ID = envelope.ID
	b.Type = envelope.Type
	b.Content = content
	return nil
}

// Document is an immutable snapshot of the authoring state: ordered blocks
// plus at most one selection. SelectedBlockID is uuid.Nil when nothing is
// selected.
type Document struct {
	Blocks          []Block   `json:"blocks"`
	SelectedBlockID uuid.UUID `json:"selectedBlockId,omitempty"`
}

// Selected returns the selected block, if any.
func (d Document) Selected() (Block, bool) {
	if d.SelectedBlockID == uuid.Nil {
		return Block{}, false
	}
	for _, block := range d.Blocks {
		if block.ID == d.SelectedBlockID {
			return block, true
		}
	}
	return Block{}, false
}

// Order returns the block ids in document order.
func (d Document) Order() []uuid.UUID {
	order := make([]uuid.UUID, len(d.Blocks))
	for i, block := range d.Blocks {
		order[i] = block.ID
	}
	return order
}
