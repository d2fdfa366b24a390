package gologger

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-funnel/internal/logging"
	"github.com/goliatone/go-funnel/pkg/interfaces"
)

// Config mirrors runtimeconfig.LoggingConfig: the level, output format, and
// focus list the funnel module exposes to hosts.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Provider hands out go-logger children scoped per funnel namespace
// (funnel.leads, funnel.generator, ...).
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the go-logger backend for the module. Format values
// follow runtimeconfig validation: json (default), console, or pretty.
func NewProvider(cfg Config) (*Provider, error) {
	opts := []glog.Option{}

	if level, ok := levels[strings.ToLower(strings.TrimSpace(cfg.Level))]; ok {
		opts = append(opts, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		opts = append(opts, glog.WithLoggerTypeJSON())
	case "console":
		opts = append(opts, glog.WithLoggerTypeConsole())
	case "pretty":
		opts = append(opts, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("gologger: unsupported format %q", cfg.Format)
	}

	if cfg.AddSource {
		opts = append(opts, glog.WithAddSource(true))
	}

	root := glog.NewLogger(opts...)

	focus := make([]string, 0, len(cfg.Focus))
	for _, name := range cfg.Focus {
		if name = strings.TrimSpace(name); name != "" {
			focus = append(focus, name)
		}
	}
	if len(focus) > 0 {
		root.Focus(focus...)
	}

	return &Provider{root: root}, nil
}

// GetLogger satisfies interfaces.LoggerProvider.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return funnelLogger{inner: p.root}
	}
	return funnelLogger{inner: p.root.GetLogger(name)}
}

// funnelLogger narrows a go-logger child to the module's Logger contract.
type funnelLogger struct {
	inner glog.Logger
}

func (l funnelLogger) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l funnelLogger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l funnelLogger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l funnelLogger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l funnelLogger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l funnelLogger) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l funnelLogger) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return funnelLogger{inner: l.inner.WithContext(ctx)}
}

// WithFields implements the optional interfaces.FieldsLogger extension used
// by logging.ModuleLogger to tag entries with their module namespace.
func (l funnelLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	if inner, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return funnelLogger{inner: inner.WithFields(copied)}
	}
	return l
}
