package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Execute runs the CLI and exits with the launcher's status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, defaultDeps(), os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, d *deps, args []string) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	cmd := newRootCmd(d)
	cmd.SetArgs(args)
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	err := cmd.ExecuteContext(ctx)
	return reportError(d.stderr, err)
}

type rootFlags struct {
	debug      bool
	save       bool
	noSave     bool
	configPath string
}

func newRootCmd(d *deps) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "livebot",
		Short:         "Launch the livebot Flask app with a resolved Python interpreter",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launch(cmd.Context(), d, f)
		},
	}

	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "enable verbose logging to .livebot/logs/launcher.log")
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "path to livebot.yaml (optional; autodetected if omitted)")
	cmd.Flags().BoolVar(&f.save, "save", false, "write a launch record under .livebot/runs")
	cmd.Flags().BoolVar(&f.noSave, "no-save", false, "do not write a launch record, even when records.enabled is set")

	cmd.AddCommand(resolveCmd(d, &f))
	cmd.AddCommand(doctorCmd(d, &f))
	cmd.AddCommand(initCmd(d))
	cmd.AddCommand(versionCmd(d))
	return cmd
}
