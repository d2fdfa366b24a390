package di

import (
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-funnel/internal/blocks"
	"github.com/goliatone/go-funnel/internal/funnels"
	"github.com/goliatone/go-funnel/internal/generator"
	"github.com/goliatone/go-funnel/internal/growth"
	"github.com/goliatone/go-funnel/internal/leads"
	"github.com/goliatone/go-funnel/internal/logging"
	"github.com/goliatone/go-funnel/internal/logging/gologger"
	"github.com/goliatone/go-funnel/internal/markdown"
	"github.com/goliatone/go-funnel/internal/runtimeconfig"
	"github.com/goliatone/go-funnel/pkg/interfaces"
)

// Container wires module dependencies. Memory repositories back every service
// until a bun.DB is supplied, so the module runs embedded with zero setup.
type Container struct {
	Config runtimeconfig.Config

	bunDB          *bun.DB
	cacheTTL       time.Duration
	cacheService   repocache.CacheService
	keySerializer  repocache.KeySerializer
	loggerProvider interfaces.LoggerProvider

	routeManager *urlkit.RouteManager

	funnelRepo funnels.Repository
	leadRepo   leads.Repository

	registry     *blocks.Registry
	importer     *markdown.Importer
	planner      growth.Planner
	leadNotifier leads.Notifier
	writer       generator.ArtifactWriter

	generatorSvc generator.Service
	funnelSvc    funnels.Service
	leadSvc      leads.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB switches persistence from memory repositories to bun-backed ones.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider attaches a logger provider for every module namespace.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithFunnelRepository overrides the funnel repository binding.
func WithFunnelRepository(repo funnels.Repository) Option {
	return func(c *Container) {
		if repo != nil {
			c.funnelRepo = repo
		}
	}
}

// WithLeadRepository overrides the lead repository binding.
func WithLeadRepository(repo leads.Repository) Option {
	return func(c *Container) {
		if repo != nil {
			c.leadRepo = repo
		}
	}
}

// WithLeadNotifier attaches a capture observer to the lead service.
func WithLeadNotifier(n leads.Notifier) Option {
	return func(c *Container) {
		c.leadNotifier = n
	}
}

// WithArtifactWriter overrides the publish destination.
func WithArtifactWriter(w generator.ArtifactWriter) Option {
	return func(c *Container) {
		c.writer = w
	}
}

// WithGeneratorService overrides the default generator binding.
func WithGeneratorService(svc generator.Service) Option {
	return func(c *Container) {
		c.generatorSvc = svc
	}
}

// WithFunnelService overrides the default funnel service binding.
func WithFunnelService(svc funnels.Service) Option {
	return func(c *Container) {
		c.funnelSvc = svc
	}
}

// WithLeadService overrides the default lead service binding.
func WithLeadService(svc leads.Service) Option {
	return func(c *Container) {
		c.leadSvc = svc
	}
}

// WithPlanner overrides the growth planner binding.
func WithPlanner(p growth.Planner) Option {
	return func(c *Container) {
		if p != nil {
			c.planner = p
		}
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) *Container {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:     cfg,
		cacheTTL:   cacheTTL,
		funnelRepo: funnels.NewMemoryRepository(),
		leadRepo:   leads.NewMemoryRepository(),
		registry:   blocks.NewRegistry(),
		importer:   markdown.NewImporter(nil),
		planner:    growth.NewDefaultPlanner(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureNavigation()

	if c.generatorSvc == nil {
		genOpts := []generator.Option{
			generator.WithLogger(logging.GeneratorLogger(c.loggerProvider)),
		}
		if c.writer != nil {
			genOpts = append(genOpts, generator.WithWriter(c.writer))
		} else if cfg.Generator.Enabled && cfg.Features.Publishing {
			genOpts = append(genOpts, generator.WithWriter(generator.NewFSWriter(cfg.Generator.OutputDir)))
		}
		if c.routeManager != nil {
			genOpts = append(genOpts, generator.WithRouteManager(c.routeManager))
		}
		if cfg.Generator.FormAction != "" {
			genOpts = append(genOpts, generator.WithFormAction(cfg.Generator.FormAction))
		}
		c.generatorSvc = generator.NewService(generator.ThemingConfig{
			ThemesDir:         cfg.Themes.BasePath,
			DefaultTheme:      cfg.Themes.DefaultTheme,
			DefaultVariant:    cfg.Themes.DefaultVariant,
			CSSVariablePrefix: cfg.Themes.CSSVariablePrefix,
		}, genOpts...)
	}

	if c.leadSvc == nil {
		leadOpts := []leads.Option{
			leads.WithLogger(logging.LeadsLogger(c.loggerProvider)),
		}
		if c.leadNotifier != nil {
			leadOpts = append(leadOpts, leads.WithNotifier(c.leadNotifier))
		}
		c.leadSvc = leads.NewService(c.leadRepo, leadOpts...)
	}

	if c.funnelSvc == nil {
		c.funnelSvc = funnels.NewService(c.funnelRepo,
			funnels.WithGenerator(c.generatorSvc),
			funnels.WithLogger(logging.FunnelsLogger(c.loggerProvider)),
		)
	}

	return c
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return
	}
	if !strings.EqualFold(strings.TrimSpace(c.Config.Logging.Provider), "gologger") {
		return
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return
	}
	c.loggerProvider = provider
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.funnelRepo = funnels.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.leadRepo = leads.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureNavigation() {
	if c.routeManager != nil {
		return
	}
	if c.Config.Navigation.RouteConfig == nil {
		return
	}
	c.routeManager = urlkit.NewRouteManager(c.Config.Navigation.RouteConfig)
}

// FunnelService returns the configured funnel service.
func (c *Container) FunnelService() funnels.Service {
	return c.funnelSvc
}

// LeadService returns the configured lead service.
func (c *Container) LeadService() leads.Service {
	return c.leadSvc
}

// GeneratorService returns the configured generator service.
func (c *Container) GeneratorService() generator.Service {
	return c.generatorSvc
}

// Planner returns the configured growth planner.
func (c *Container) Planner() growth.Planner {
	return c.planner
}

// BlockRegistry returns the block definition registry.
func (c *Container) BlockRegistry() *blocks.Registry {
	return c.registry
}

// Importer returns the Markdown page importer.
func (c *Container) Importer() *markdown.Importer {
	return c.importer
}

// RouteManager exposes the configured URL route manager, which may be nil.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// LoggerProvider exposes the configured logger provider, which may be nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// FunnelRepository exposes the configured funnel repository.
func (c *Container) FunnelRepository() funnels.Repository {
	return c.funnelRepo
}

// LeadRepository exposes the configured lead repository.
func (c *Container) LeadRepository() leads.Repository {
	return c.leadRepo
}
