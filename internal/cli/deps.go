package cli

import (
	"io"
	"os"

	"github.com/raji2203030/livebot/internal/infra/dotenv"
	"github.com/raji2203030/livebot/internal/infra/hostenv"
	"github.com/raji2203030/livebot/internal/infra/procrunner"
	"github.com/raji2203030/livebot/internal/infra/projectfinder"
	"github.com/raji2203030/livebot/internal/ports"
)

// deps holds everything the commands touch outside the process.
type deps struct {
	host    ports.HostProvider
	files   ports.FileChecker
	runner  ports.ProcessRunner
	envs    ports.EnvLoader
	finder  ports.ProjectLocator
	getwd   func() (string, error)
	initter ports.ProjectInitializer

	stdout io.Writer
	stderr io.Writer
}

func defaultDeps() *deps {
	host := hostenv.New()
	return &deps{
		host:    host,
		files:   host,
		runner:  procrunner.New(),
		envs:    dotenv.NewLoader(),
		finder:  projectfinder.NewFinder(),
		getwd:   os.Getwd,
		initter: newInitializer(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}
