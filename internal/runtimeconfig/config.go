package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrGeneratorOutputDirRequired = errors.New("funnel config: generator output directory is required when publishing is enabled")
	ErrThemesDirRequired          = errors.New("funnel config: themes directory is required when a default theme is set")
	ErrLoggingProviderRequired    = errors.New("funnel config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown     = errors.New("funnel config: logging provider is invalid")
	ErrLoggingLevelInvalid        = errors.New("funnel config: logging level is invalid")
	ErrLoggingFormatInvalid       = errors.New("funnel config: logging format is invalid")
	ErrCacheTTLInvalid            = errors.New("funnel config: cache TTL must be zero or positive")
)

// Config aggregates feature flags and adapter bindings for the funnel module.
// Fields intentionally use simple types so host applications can extend them.
type Config struct {
	Enabled    bool
	Storage    StorageConfig
	Cache      CacheConfig
	Navigation NavigationConfig
	Themes     ThemeConfig
	Generator  GeneratorConfig
	Leads      LeadsConfig
	Features   Features
	Logging    LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// NavigationConfig carries published-URL routing configuration.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
}

// ThemeConfig captures theme resolution behaviour for published pages.
type ThemeConfig struct {
	BasePath          string
	DefaultTheme      string
	DefaultVariant    string
	CSSVariablePrefix string
}

// GeneratorConfig captures behaviour for the publish pipeline.
type GeneratorConfig struct {
	Enabled    bool
	OutputDir  string
	FormAction string
}

// LeadsConfig captures lead-capture behaviour.
type LeadsConfig struct {
	DefaultSource string
}

// Features toggles module functionality.
type Features struct {
	Publishing bool
	Growth     bool
	Logger     bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an embedded deployment.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Navigation: NavigationConfig{},
		Themes: ThemeConfig{
			BasePath: "themes",
		},
		Generator: GeneratorConfig{
			Enabled:    true,
			OutputDir:  "dist",
			FormAction: "/api/leads",
		},
		Leads: LeadsConfig{
			DefaultSource: "public_page",
		},
		Features: Features{
			Publishing: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Generator.Enabled && cfg.Features.Publishing {
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrGeneratorOutputDirRequired
		}
	}
	if strings.TrimSpace(cfg.Themes.DefaultTheme) != "" && strings.TrimSpace(cfg.Themes.BasePath) == "" {
		return ErrThemesDirRequired
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
