package ports

import (
	"context"

	"github.com/raji2203030/livebot/internal/domain"
)

// ProcessRunner runs a child process to completion with inherited stdio.
// A non-zero exit is reported through the exit code, not the error; the error
// is reserved for processes that could not be started at all.
type ProcessRunner interface {
	Run(ctx context.Context, p domain.Process) (exitCode int, err error)
}
