// Package dotenv reads the optional .env file handed to the launched app.
package dotenv

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

// Loader reads dotenv files with godotenv.
type Loader struct {
	lookup func(key string) (string, bool)
}

type Option func(*Loader)

// WithLookup replaces os.LookupEnv; useful for tests.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(l *Loader) {
		if lookup != nil {
			l.lookup = lookup
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.EnvLoader = (*Loader)(nil)

// LoadEnv returns the variables in path that are not already set in the
// launcher's own environment. A missing file yields an empty set.
func (l *Loader) LoadEnv(path string) (domain.Vars, error) {
	out := domain.Vars{}
	if path == "" {
		return out, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return out, &domain.OpError{
			Op:   "dotenv.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		return out, &domain.OpError{
			Op:   "dotenv.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	for k, v := range vals {
		if _, set := l.lookup(k); set {
			continue
		}
		out[k] = v
	}
	return out, nil
}
