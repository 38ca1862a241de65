package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raji2203030/livebot/internal/infra/logger"
	"github.com/raji2203030/livebot/internal/usecase"
)

func resolveCmd(d *deps, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the Python interpreter the launcher would use",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := loadProject(d, f.configPath)
			if err != nil {
				return err
			}
			defer p.setupLogging(f.debug)()

			uc := usecase.NewLaunch(d.host, p.cfg.Candidates(), d.runner, d.files, usecase.WithLogger(logger.L()))
			interp, err := uc.Resolve()
			if err != nil {
				return err
			}
			fmt.Fprintln(d.stdout, interp.Path)
			return nil
		},
	}
}
