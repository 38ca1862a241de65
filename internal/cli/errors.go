package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/raji2203030/livebot/internal/domain"
)

const interpreterNotFoundMsg = "Python not found. Please install Python and re-run this script."

// reportError prints err for the user and returns the exit status.
// Child exit statuses pass through silently; the child already spoke.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var ee *domain.ExitError
	if errors.As(err, &ee) {
		return domain.ExitCode(err)
	}

	th := newTheme(w)
	fmt.Fprintln(w, th.bad.Render(userMessage(err)))
	return 1
}

func userMessage(err error) string {
	if errors.Is(err, domain.ErrInterpreterNotFound) {
		return interpreterNotFoundMsg
	}
	if errors.Is(err, context.Canceled) {
		return "Interrupted"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidConfig:
			base := "config"
			if oe.Path != "" {
				base = filepath.Base(oe.Path)
			}
			return fmt.Sprintf("Invalid %s: %v", base, oe.Err)
		case domain.KindNotFound:
			if oe.Path != "" {
				return "Not found: " + oe.Path
			}
		}
	}
	return "Error: " + err.Error()
}
