package ports

// FileChecker answers whether a regular file exists.
type FileChecker interface {
	Exists(path string) bool
}
