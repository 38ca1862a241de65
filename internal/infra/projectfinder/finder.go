package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

// Finder locates a livebot project root by searching upward for a marker
// file.
type Finder struct {
	Marker string // defaults to "livebot.yaml"
}

func NewFinder() *Finder {
	return &Finder{Marker: "livebot.yaml"}
}

var _ ports.ProjectLocator = (*Finder)(nil)

// FindRoot walks up from startDir to the first directory holding Marker.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path means "start from its directory".
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.Marker)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "projectfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// RootOrDir returns the project root above dir, or dir itself when no
// marker exists anywhere above it.
func (f *Finder) RootOrDir(dir string) string {
	if root, err := f.FindRoot(dir); err == nil {
		return root
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
