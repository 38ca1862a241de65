package ports

import "github.com/raji2203030/livebot/internal/domain"

// ProjectInitializer scaffolds launcher files into a project directory.
type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) (written []string, err error)
}
