package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/infra/config"
	"github.com/raji2203030/livebot/internal/infra/logger"
)

type projectCtx struct {
	root string
	cfg  domain.Config
}

func loadProject(d *deps, configFlag string) (*projectCtx, error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := config.LoadExplicit(abs)
		if err != nil {
			return nil, err
		}
		return &projectCtx{root: filepath.Dir(abs), cfg: cfg}, nil
	}

	wd, err := d.getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root := d.finder.RootOrDir(wd)
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return &projectCtx{root: root, cfg: cfg}, nil
}

// abs resolves a configured path against the project root.
func (p *projectCtx) abs(path string) string {
	if path == "" {
		return ""
	}
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.root, path)
}

func (p *projectCtx) plan() domain.Plan {
	return domain.Plan{
		Root:       p.root,
		Manifest:   p.abs(p.cfg.Manifest),
		EntryPoint: p.abs(p.cfg.EntryPoint),
		DotEnv:     p.abs(p.cfg.DotEnv),
	}
}

// setupLogging starts the file logger; failures only disable logging.
func (p *projectCtx) setupLogging(debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{
		Root:  p.root,
		Dir:   p.cfg.LogsDir,
		Debug: debug,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
