package domain

import (
	"path/filepath"
	"strings"
)

// Host is the slice of the outside world interpreter resolution may look at.
// Nil functions behave as "nothing found".
type Host struct {
	Getenv   func(key string) string
	LookPath func(name string) (string, error)
	IsFile   func(path string) bool
}

func (h Host) getenv(key string) string {
	if h.Getenv == nil {
		return ""
	}
	return h.Getenv(key)
}

func (h Host) lookPath(name string) (string, bool) {
	if h.LookPath == nil {
		return "", false
	}
	p, err := h.LookPath(name)
	if err != nil || strings.TrimSpace(p) == "" {
		return "", false
	}
	return p, true
}

func (h Host) isFile(path string) bool {
	if h.IsFile == nil {
		return false
	}
	return h.IsFile(path)
}

// Strategy maps a host to an optional interpreter path.
type Strategy func(h Host) (string, bool)

// OnPath resolves name through the host's executable search path.
func OnPath(name string) Strategy {
	return func(h Host) (string, bool) {
		return h.lookPath(name)
	}
}

// EnvJoin resolves to envVar's value joined with elems, provided that file
// exists. An unset variable never resolves.
func EnvJoin(envVar string, elems ...string) Strategy {
	return func(h Host) (string, bool) {
		base := strings.TrimSpace(h.getenv(envVar))
		if base == "" {
			return "", false
		}
		parts := make([]string, 0, len(elems)+1)
		parts = append(parts, base)
		for _, e := range elems {
			parts = append(parts, filepath.FromSlash(e))
		}
		p := filepath.Join(parts...)
		if !h.isFile(p) {
			return "", false
		}
		return p, true
	}
}

// Fixed resolves to path if it names an existing file.
func Fixed(path string) Strategy {
	return func(h Host) (string, bool) {
		p := filepath.FromSlash(path)
		if !h.isFile(p) {
			return "", false
		}
		return p, true
	}
}

// Candidate is a named resolution strategy.
type Candidate struct {
	Name     string
	Strategy Strategy
}

// Candidate converts s into a strategy. ok is false when no field is set.
func (s InterpreterSpec) Candidate() (Candidate, bool) {
	switch {
	case strings.TrimSpace(s.Command) != "":
		return Candidate{Name: s.Command + " (PATH)", Strategy: OnPath(s.Command)}, true
	case strings.TrimSpace(s.Env) != "":
		name := "$" + s.Env
		if s.Path != "" {
			name += "/" + s.Path
		}
		return Candidate{Name: name, Strategy: EnvJoin(s.Env, s.Path)}, true
	case strings.TrimSpace(s.File) != "":
		return Candidate{Name: s.File, Strategy: Fixed(s.File)}, true
	default:
		return Candidate{}, false
	}
}

// Explicit builds the candidate for a user supplied interpreter: a bare name
// goes through PATH, anything else must be a file.
func Explicit(v string) Candidate {
	if strings.ContainsAny(v, `/\`) {
		return Candidate{Name: v, Strategy: Fixed(v)}
	}
	return Candidate{Name: v + " (PATH)", Strategy: OnPath(v)}
}

// Interpreter is a resolved Python executable.
type Interpreter struct {
	Path      string `json:"path"`
	Candidate string `json:"candidate"`
}

// Resolver picks an interpreter for a host.
type Resolver func(h Host) (Interpreter, error)

// FirstOf tries candidates in order and stops at the first that resolves.
// Later candidates are not evaluated.
func FirstOf(candidates ...Candidate) Resolver {
	return func(h Host) (Interpreter, error) {
		for _, c := range candidates {
			if c.Strategy == nil {
				continue
			}
			if p, ok := c.Strategy(h); ok {
				return Interpreter{Path: p, Candidate: c.Name}, nil
			}
		}
		return Interpreter{}, &OpError{
			Op:   "resolve.interpreter",
			Kind: KindNotFound,
			Err:  ErrInterpreterNotFound,
		}
	}
}
