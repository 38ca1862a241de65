package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raji2203030/livebot/internal/domain"
)

type probe struct {
	name string
	path string
	ok   bool
}

func doctorCmd(d *deps, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check every interpreter candidate and the project files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(d, f.configPath)
			if err != nil {
				return err
			}

			probes, err := probeAll(cmd.Context(), d.host.Host(), p.cfg.Candidates())
			if err != nil {
				return err
			}

			files := []fileCheck{
				{label: "manifest", path: p.abs(p.cfg.Manifest), optional: true},
				{label: "entry point", path: p.abs(p.cfg.EntryPoint)},
				{label: "dotenv", path: p.abs(p.cfg.DotEnv), optional: true},
			}
			for i := range files {
				files[i].present = d.files.Exists(files[i].path)
			}

			printDoctor(d.stdout, p.root, probes, files)

			for _, pr := range probes {
				if pr.ok {
					return nil
				}
			}
			return &domain.OpError{
				Op:   "doctor",
				Kind: domain.KindNotFound,
				Err:  domain.ErrInterpreterNotFound,
			}
		},
	}
}

// probeAll evaluates every candidate concurrently; results keep the
// configured order.
func probeAll(ctx context.Context, host domain.Host, cands []domain.Candidate) ([]probe, error) {
	out := make([]probe, len(cands))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range cands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = probe{name: c.Name}
			if c.Strategy == nil {
				return nil
			}
			out[i].path, out[i].ok = c.Strategy(host)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type fileCheck struct {
	label    string
	path     string
	optional bool
	present  bool
}

func printDoctor(w io.Writer, root string, probes []probe, files []fileCheck) {
	th := newTheme(w)

	fmt.Fprintln(w, th.title.Render("Project"))
	fmt.Fprintf(w, "  root: %s\n\n", root)

	fmt.Fprintln(w, th.title.Render("Interpreters"))
	selected := false
	for _, pr := range probes {
		switch {
		case pr.ok && !selected:
			selected = true
			fmt.Fprintf(w, "  %s %s -> %s %s\n", th.ok.Render("✓"), pr.name, pr.path, th.faint.Render("(selected)"))
		case pr.ok:
			fmt.Fprintf(w, "  %s %s -> %s\n", th.ok.Render("✓"), pr.name, pr.path)
		default:
			fmt.Fprintf(w, "  %s %s %s\n", th.bad.Render("✗"), pr.name, th.faint.Render("not found"))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, th.title.Render("Files"))
	for _, fc := range files {
		switch {
		case fc.present:
			fmt.Fprintf(w, "  %s %s: %s\n", th.ok.Render("✓"), fc.label, fc.path)
		case fc.optional:
			fmt.Fprintf(w, "  %s %s: %s %s\n", th.faint.Render("-"), fc.label, fc.path, th.faint.Render("(absent, skipped)"))
		default:
			fmt.Fprintf(w, "  %s %s: %s %s\n", th.bad.Render("✗"), fc.label, fc.path, th.faint.Render("missing"))
		}
	}
}
