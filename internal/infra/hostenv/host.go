// Package hostenv is the real host behind interpreter resolution.
package hostenv

import (
	"os"
	"os/exec"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

// OS reads the process environment, PATH and filesystem of this machine.
type OS struct{}

func New() OS { return OS{} }

var (
	_ ports.HostProvider = OS{}
	_ ports.FileChecker  = OS{}
)

func (OS) Host() domain.Host {
	return domain.Host{
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		IsFile:   isFile,
	}
}

// Exists reports whether path is an existing regular file.
func (OS) Exists(path string) bool {
	return isFile(path)
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
