package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-funnel/internal/funnels"
	"github.com/goliatone/go-funnel/internal/leads"
)

// Models returns every bun model persisted by the module, in creation order.
func Models() []any {
	return []any{
		(*funnels.Funnel)(nil),
		(*leads.InboundLead)(nil),
	}
}

// RegisterModels registers module models with the bun instance so relations
// resolve before queries run.
func RegisterModels(db *bun.DB) {
	for _, model := range Models() {
		db.RegisterModel(model)
	}
}

// EnsureSchema creates the module tables when they do not already exist. It is
// intended for embedded deployments and tests; production installs usually run
// their own migrations.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return fmt.Errorf("storage: bun.DB is required")
	}

	RegisterModels(db)

	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table %T: %w", model, err)
		}
	}
	return nil
}
