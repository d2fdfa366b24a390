package leads

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewInboundLeadRepository creates a repository for InboundLead entities.
func NewInboundLeadRepository(db *bun.DB) repository.Repository[*InboundLead] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*InboundLead]{
		NewRecord: func() *InboundLead { return &InboundLead{} },
		GetID: func(lead *InboundLead) uuid.UUID {
			return lead.ID
		},
		SetID: func(lead *InboundLead, id uuid.UUID) {
			lead.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(lead *InboundLead) string {
			return lead.ID.String()
		},
	})
}
