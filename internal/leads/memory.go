package leads

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for tests and embedded use.
type MemoryRepository struct {
	mu    sync.RWMutex
	leads map[uuid.UUID]*InboundLead
}

// NewMemoryRepository creates an empty in-memory lead repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		leads: make(map[uuid.UUID]*InboundLead),
	}
}

func (r *MemoryRepository) Create(_ context.Context, lead *InboundLead) (*InboundLead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneLead(lead)
	r.leads[stored.ID] = stored
	return cloneLead(stored), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*InboundLead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, &NotFoundError{Resource: "inbound_lead", Key: id.String()}
	}
	return cloneLead(lead), nil
}

func (r *MemoryRepository) ListByProject(_ context.Context, projectID string) ([]*InboundLead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*InboundLead
	for _, lead := range r.leads {
		if lead.ProjectID == projectID {
			out = append(out, cloneLead(lead))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneLead(lead *InboundLead) *InboundLead {
	if lead == nil {
		return nil
	}
	copied := *lead
	return &copied
}
