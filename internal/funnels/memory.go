package funnels

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for tests and embedded use.
type MemoryRepository struct {
	mu      sync.RWMutex
	funnels map[uuid.UUID]*Funnel
	slugs   map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory funnel repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		funnels: make(map[uuid.UUID]*Funnel),
		slugs:   make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) Create(_ context.Context, funnel *Funnel) (*Funnel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.slugs[funnel.Slug]; ok && existing != funnel.ID {
		return nil, ErrSlugTaken
	}

	stored := cloneFunnel(funnel)
	r.funnels[stored.ID] = stored
	r.slugs[stored.Slug] = stored.ID
	return cloneFunnel(stored), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Funnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	funnel, ok := r.funnels[id]
	if !ok {
		return nil, &NotFoundError{Resource: "funnel", Key: id.String()}
	}
	return cloneFunnel(funnel), nil
}

func (r *MemoryRepository) GetBySlug(_ context.Context, slug string) (*Funnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.slugs[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "funnel", Key: slug}
	}
	return cloneFunnel(r.funnels[id]), nil
}

func (r *MemoryRepository) ListByProject(_ context.Context, projectID string) ([]*Funnel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Funnel
	for _, funnel := range r.funnels {
		if funnel.ProjectID == projectID {
			out = append(out, cloneFunnel(funnel))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, funnel *Funnel) (*Funnel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.funnels[funnel.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "funnel", Key: funnel.ID.String()}
	}

	if funnel.Slug != current.Slug {
		if existing, taken := r.slugs[funnel.Slug]; taken && existing != funnel.ID {
			return nil, ErrSlugTaken
		}
		delete(r.slugs, current.Slug)
	}

	stored := cloneFunnel(funnel)
	r.funnels[stored.ID] = stored
	r.slugs[stored.Slug] = stored.ID
	return cloneFunnel(stored), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	funnel, ok := r.funnels[id]
	if !ok {
		return nil
	}
	delete(r.slugs, funnel.Slug)
	delete(r.funnels, id)
	return nil
}

func cloneFunnel(funnel *Funnel) *Funnel {
	if funnel == nil {
		return nil
	}
	copied := *funnel

	cloned := funnel.Document
	cloned.Blocks = nil
	for _, block := range funnel.Document.Blocks {
		cloned.Blocks = append(cloned.Blocks, block.Clone())
	}
	copied.Document = cloned

	copied.Page = funnel.Page.Clone()

	if funnel.PublishedAt != nil {
		ts := *funnel.PublishedAt
		copied.PublishedAt = &ts
	}
	return &copied
}
