package documents

import (
	"sync"
	"time"

	"github.com/goliatone/go-funnel/internal/blocks"
	"github.com/google/uuid"
)

// IDGenerator produces block identifiers.
type IDGenerator func() uuid.UUID

// StoreOption mutates the store during construction.
type StoreOption func(*Store)

// WithIDGenerator overrides the block id source, mainly for deterministic tests.
func WithIDGenerator(generator IDGenerator) StoreOption {
	return func(s *Store) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithClock overrides the store clock.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// Store is the single source of truth for one authoring session's document.
// It is explicitly constructed and owned by the session; every mutation goes
// through its operations and produces a fresh immutable snapshot for
// rendering. Operations are synchronous; the mutex only guards against
// accidental cross-goroutine use, the authoring model remains single-writer.
type Store struct {
	mu       sync.RWMutex
	blocks   []Block
	selected uuid.UUID
	id       IDGenerator
	now      func() time.Time
	updated  time.Time
}

// NewStore constructs an empty document store for a fresh editing session.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		id:  uuid.New,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new block of the given type seeded with its default content.
// Unknown types are rejected; nothing is selected automatically.
func (s *Store) Add(t blocks.Type) (Block, error) {
	content := blocks.DefaultContent(t)
	if content == nil {
		return Block{}, blocks.ErrUnknownBlockType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	block := Block{ID: s.id(), Type: t, Content: content}
	s.blocks = append(s.blocks, block)
	s.touch()
	return block.Clone(), nil
}

// Remove deletes the block with the given id. A missing id is a silent no-op.
// Removing the selected block clears the selection.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, block := range s.blocks {
		if block.ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			if s.selected == id {
				s.selected = uuid.Nil
			}
			s.touch()
			return
		}
	}
}

// Update shallow-merges a patch into the target block's content. A missing id
// is a silent no-op; a patch whose kind does not match the block's type
// returns blocks.ErrContentKindMismatch without touching the document.
func (s *Store) Update(id uuid.UUID, patch blocks.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, block := range s.blocks {
		if block.ID != id {
			continue
		}
		merged, err := blocks.Apply(block.Content, patch)
		if err != nil {
			return err
		}
		s.blocks[i].Content = merged
		s.touch()
		return nil
	}
	return nil
}

// Reorder replaces the block sequence wholesale with the supplied order. The
// store deliberately performs no permutation validation: preserving set
// membership is the drag interaction's responsibility. Ids the store does not
// hold are skipped; blocks absent from the order are dropped.
func (s *Store) Reorder(order []uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[uuid.UUID]Block, len(s.blocks))
	for _, block := range s.blocks {
		byID[block.ID] = block
	}

	next := make([]Block, 0, len(order))
	for _, id := range order {
		if block, ok := byID[id]; ok {
			next = append(next, block)
			delete(byID, id)
		}
	}
	s.blocks = next

	if s.selected != uuid.Nil {
		if _, ok := s.find(s.selected); !ok {
			s.selected = uuid.Nil
		}
	}
	s.touch()
}

// Select marks a block as selected. uuid.Nil clears the selection; ids not
// present in the document also clear it so the selection invariant holds.
func (s *Store) Select(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == uuid.Nil {
		s.selected = uuid.Nil
		return
	}
	if _, ok := s.find(id); !ok {
		s.selected = uuid.Nil
		return
	}
	s.selected = id
}

// SetBlocks replaces the document with a persisted block list, e.g. when an
// editing session resumes a saved funnel. Duplicate ids are dropped keeping
// the first occurrence, preserving the uniqueness invariant.
func (s *Store) SetBlocks(list []Block) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(list))
	next := make([]Block, 0, len(list))
	for _, block := range list {
		if _, dup := seen[block.ID]; dup {
			continue
		}
		seen[block.ID] = struct{}{}
		next = append(next, block.Clone())
	}
	s.blocks = next

	if s.selected != uuid.Nil {
		if _, ok := s.find(s.selected); !ok {
			s.selected = uuid.Nil
		}
	}
	s.touch()
}

// Snapshot returns an immutable copy of the current document for rendering.
func (s *Store) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cloned := make([]Block, len(s.blocks))
	for i, block := range s.blocks {
		cloned[i] = block.Clone()
	}
	return Document{Blocks: cloned, SelectedBlockID: s.selected}
}

// UpdatedAt reports when the document last changed.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}

func (s *Store) find(id uuid.UUID) (int, bool) {
	for i, block := range s.blocks {
		if block.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) touch() {
	s.updated = s.now()
}
