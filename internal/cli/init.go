package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raji2203030/livebot/internal/infra/fsproject"
	"github.com/raji2203030/livebot/internal/ports"
	"github.com/raji2203030/livebot/internal/usecase"
)

func newInitializer() ports.ProjectInitializer {
	return fsproject.NewInitializer()
}

func initCmd(d *deps) *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a livebot.yaml and .gitignore entries into a project",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root := strings.TrimSpace(dir)
			if root == "" {
				wd, err := d.getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid project path: %w", err)
			}

			written, err := usecase.NewInitProject(d.initter).Execute(root, force)
			if err != nil {
				return err
			}
			if len(written) == 0 {
				fmt.Fprintln(d.stdout, "Nothing to do (use --force to overwrite)")
				return nil
			}
			for _, w := range written {
				fmt.Fprintf(d.stdout, "wrote %s\n", w)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", "", "project directory (defaults to the working directory)")
	c.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return c
}
