package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raji2203030/livebot/internal/buildinfo"
)

func versionCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(d.stdout, buildinfo.String())
		},
	}
}
