package usecase

import (
	"context"
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tokrecharge/migration-server/pkg/domain/types"
)

//go:embed data/index.html
var landingPage []byte

// LandingPage returns the default document written by Bootstrap
func LandingPage() []byte {
	return append([]byte(nil), landingPage...)
}

type bootstrapConfig struct {
	onCreate func(staticDir string)
}

// BootstrapOption is a functional option for Bootstrap
type BootstrapOption func(*bootstrapConfig)

// WithCreateNotice sets a function called once the static root is known to be
// missing, before anything is written to disk
func WithCreateNotice(fn func(staticDir string)) BootstrapOption {
	return func(c *bootstrapConfig) {
		c.onCreate = fn
	}
}

// Bootstrap prepares the static root. When the directory does not exist it is
// created together with a default landing page; an existing directory is left
// untouched. It reports whether anything was created.
func Bootstrap(ctx context.Context, staticDir string, opts ...BootstrapOption) (bool, error) {
	logger := ctxlog.From(ctx)

	cfg := &bootstrapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	info, err := os.Stat(staticDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, goerr.New("static root is not a directory", goerr.V("static_dir", staticDir))
		}
		logger.Debug("Static root found", "static_dir", staticDir)
		return false, nil

	case !errors.Is(err, fs.ErrNotExist):
		return false, goerr.Wrap(err, "failed to stat static root", goerr.V("static_dir", staticDir))
	}

	logger.Warn("Static root not found, creating basic structure", "static_dir", staticDir)
	if cfg.onCreate != nil {
		cfg.onCreate(staticDir)
	}

	if err := os.MkdirAll(staticDir, 0755); err != nil {
		return false, goerr.Wrap(err, "failed to create static root", goerr.V("static_dir", staticDir))
	}

	indexPath := filepath.Join(staticDir, types.IndexFile)
	if err := os.WriteFile(indexPath, landingPage, 0644); err != nil {
		return false, goerr.Wrap(err, "failed to write landing page", goerr.V("path", indexPath))
	}

	logger.Info("Landing page written", "path", indexPath, "size_bytes", len(landingPage))
	return true, nil
}
