package usecase

import (
	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

// InitProject scaffolds livebot files into a project directory.
type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

// Execute returns the paths it wrote; existing files are kept unless force.
func (uc *InitProject) Execute(root string, force bool) ([]string, error) {
	return uc.initializer.Init(domain.ProjectSpec{Root: root}, force)
}
