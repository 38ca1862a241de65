// Package procrunner runs child processes attached to the launcher's
// terminal.
package procrunner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

const defaultWaitDelay = 10 * time.Second

// Runner starts child processes wired to the launcher's stdio.
type Runner struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	baseEnv   func() []string
	waitDelay time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdio overrides the inherited stdio; nil keeps the default.
func WithStdio(in io.Reader, out, errOut io.Writer) Option {
	return func(r *Runner) {
		if in != nil {
			r.stdin = in
		}
		if out != nil {
			r.stdout = out
		}
		if errOut != nil {
			r.stderr = errOut
		}
	}
}

// WithWaitDelay bounds how long a cancelled child may take to exit after
// being interrupted before it is killed.
func WithWaitDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.waitDelay = d
		}
	}
}

// New returns a Runner using os.Stdin, os.Stdout and os.Stderr.
func New(opts ...Option) *Runner {
	r := &Runner{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		baseEnv:   os.Environ,
		waitDelay: defaultWaitDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ProcessRunner = (*Runner)(nil)

// Run blocks until the child exits. The exit status is returned as-is; err is
// only set when the process could not be started.
func (r *Runner) Run(ctx context.Context, p domain.Process) (int, error) {
	if strings.TrimSpace(p.Path) == "" {
		return 0, errors.New("process path is empty")
	}

	cmd := exec.CommandContext(ctx, p.Path, p.Args...)
	if strings.TrimSpace(p.Dir) != "" {
		cmd.Dir = p.Dir
	}
	cmd.Env = mergeEnv(r.baseEnv(), p.Env)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	// Give the child a chance to shut down cleanly on Ctrl+C.
	cmd.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return cmd.Process.Kill()
		}
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.waitDelay

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	waitErr := cmd.Wait()
	if waitErr == nil {
		return 0, nil
	}

	var ee *exec.ExitError
	if errors.As(waitErr, &ee) && ee.ProcessState != nil {
		code := ee.ProcessState.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = 1
		}
		return code, nil
	}
	if cmd.ProcessState != nil {
		code := cmd.ProcessState.ExitCode()
		if code > 0 {
			return code, nil
		}
	}
	return 1, nil
}

func mergeEnv(base []string, extra domain.Vars) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+extra[k])
	}
	return out
}
