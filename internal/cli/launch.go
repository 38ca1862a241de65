package cli

import (
	"context"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/infra/launchstore"
	"github.com/raji2203030/livebot/internal/infra/logger"
	"github.com/raji2203030/livebot/internal/usecase"
)

func launch(ctx context.Context, d *deps, f rootFlags) error {
	p, err := loadProject(d, f.configPath)
	if err != nil {
		return err
	}

	defer p.setupLogging(f.debug)()
	log := logger.L()
	log.Info("launch.start", "root", p.root)

	opts := []usecase.LaunchOption{
		usecase.WithOutput(d.stdout),
		usecase.WithLogger(log),
		usecase.WithEnvLoader(d.envs),
	}
	if (p.cfg.Records.Enabled || f.save) && !f.noSave {
		opts = append(opts, usecase.WithStore(launchstore.NewJSONStore(p.root, p.cfg, launchstore.WithIndex(true))))
	}

	uc := usecase.NewLaunch(d.host, p.cfg.Candidates(), d.runner, d.files, opts...)
	rec, err := uc.Execute(ctx, p.plan())
	log.Info("launch.done", "id", rec.ID, "exit_code", domain.ExitCode(err))
	return err
}
