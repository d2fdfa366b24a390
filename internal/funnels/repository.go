package funnels

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewFunnelRepository creates a repository for Funnel entities.
func NewFunnelRepository(db *bun.DB) repository.Repository[*Funnel] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Funnel]{
		NewRecord: func() *Funnel { return &Funnel{} },
		GetID: func(f *Funnel) uuid.UUID {
			return f.ID
		},
		SetID: func(f *Funnel, id uuid.UUID) {
			f.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(f *Funnel) string {
			return f.Slug
		},
	})
}
