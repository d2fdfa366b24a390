package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactWriter persists generated pages. Implementations must be safe for
// concurrent use.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path string, content []byte) error
}

// NewFSWriter returns a writer rooted at dir. Paths are resolved relative to
// the root; escaping the root is rejected.
func NewFSWriter(dir string) ArtifactWriter {
	return &fsWriter{root: filepath.Clean(dir)}
}

type fsWriter struct {
	root string
}

func (w *fsWriter) resolve(path string) (string, error) {
	cleaned := filepath.Clean(strings.TrimSpace(path))
	if cleaned == "" || cleaned == "." {
		return w.root, nil
	}
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", errors.New("generator: artifact path escapes output root")
	}
	return filepath.Join(w.root, cleaned), nil
}

func (w *fsWriter) EnsureDir(_ context.Context, path string) error {
	resolved, err := w.resolve(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(resolved, 0o755)
}

func (w *fsWriter) WriteFile(_ context.Context, path string, content []byte) error {
	resolved, err := w.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0o644)
}

// NoopWriter discards every artifact, for render-only previews.
type NoopWriter struct{}

func (NoopWriter) EnsureDir(context.Context, string) error { return nil }

func (NoopWriter) WriteFile(context.Context, string, []byte) error { return nil }
