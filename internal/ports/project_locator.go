package ports

// ProjectLocator finds the project root starting from an arbitrary directory.
type ProjectLocator interface {
	FindRoot(startDir string) (string, error)
	// RootOrDir is FindRoot falling back to dir itself.
	RootOrDir(dir string) string
}
