package funnel

import (
	"github.com/goliatone/go-funnel/internal/blocks"
	"github.com/goliatone/go-funnel/internal/di"
	"github.com/goliatone/go-funnel/internal/documents"
	"github.com/goliatone/go-funnel/internal/funnels"
	"github.com/goliatone/go-funnel/internal/generator"
	"github.com/goliatone/go-funnel/internal/growth"
	"github.com/goliatone/go-funnel/internal/leads"
	"github.com/goliatone/go-funnel/internal/markdown"
	"github.com/goliatone/go-funnel/internal/pages"
	"github.com/goliatone/go-funnel/internal/render"
	"github.com/goliatone/go-funnel/internal/verticals"
)

// FunnelService exports the funnel service contract for consumers of the funnel package.
type FunnelService = funnels.Service

// LeadService exports the lead-capture service contract.
type LeadService = leads.Service

// GeneratorService exports the public page generator contract.
type GeneratorService = generator.Service

// GrowthPlanner exports the content and growth planner contract.
type GrowthPlanner = growth.Planner

// Funnel exports the persisted funnel aggregate.
type Funnel = funnels.Funnel

// CreateFunnelInput exports the funnel creation payload.
type CreateFunnelInput = funnels.CreateInput

// Document exports the editor document: an ordered block list plus selection.
type Document = documents.Document

// Block exports a single editor block.
type Block = documents.Block

// DocumentStore exports the in-memory editor document store.
type DocumentStore = documents.Store

// PageDocument exports the flat public page payload.
type PageDocument = pages.PageDocument

// BlockType exports the closed set of block type identifiers.
type BlockType = blocks.Type

// BlockEditor exports a resolved block editor descriptor.
type BlockEditor = blocks.Editor

// Submission exports the lead form payload.
type Submission = leads.Submission

// LeadForm exports the lead capture state machine.
type LeadForm = leads.Form

// Vertical exports the business vertical identifier.
type Vertical = verticals.Vertical

// Canvas exports the editor canvas renderer.
type Canvas = render.Canvas

// Importer exports the Markdown page importer.
type Importer = markdown.Importer

// Module represents the top level funnel runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a funnel module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Module{container: di.NewContainer(cfg, opts...)}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Funnels returns the configured funnel service.
func (m *Module) Funnels() FunnelService {
	return m.container.FunnelService()
}

// Leads returns the configured lead-capture service.
func (m *Module) Leads() LeadService {
	return m.container.LeadService()
}

// Generator returns the configured page generator.
func (m *Module) Generator() GeneratorService {
	return m.container.GeneratorService()
}

// Growth returns the configured growth planner.
func (m *Module) Growth() GrowthPlanner {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Planner()
}

// Blocks returns the block definition registry.
func (m *Module) Blocks() *blocks.Registry {
	return m.container.BlockRegistry()
}

// Markdown returns the Markdown page importer.
func (m *Module) Markdown() *Importer {
	return m.container.Importer()
}

// NewDocumentStore constructs a standalone editor document store.
func NewDocumentStore(opts ...documents.StoreOption) *DocumentStore {
	return documents.NewStore(opts...)
}

// NewCanvas constructs a standalone editor canvas renderer.
func NewCanvas() *Canvas {
	return render.NewCanvas()
}

// NewLeadForm constructs a lead capture form bound to the module's lead service.
func (m *Module) NewLeadForm(projectID, source string) *LeadForm {
	return leads.NewForm(projectID, m.container.LeadService(), source)
}

// ResolveEditor returns the editor descriptor for a block type, falling back to
// the "no editor available" descriptor for unknown types.
func ResolveEditor(t BlockType) BlockEditor {
	return blocks.ResolveEditor(t)
}

// DefaultContent returns the seeded content for a block type, or nil for
// unknown types.
func DefaultContent(t BlockType) blocks.Content {
	return blocks.DefaultContent(t)
}

// ParseVertical maps a stored vertical identifier to a known vertical,
// defaulting to the fitness vertical.
func ParseVertical(value string) Vertical {
	return verticals.Parse(value)
}
