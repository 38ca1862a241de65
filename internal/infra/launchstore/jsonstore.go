package launchstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

const defaultDir = ".livebot/runs"
const maskValue = "********"
const indexFile = "index.jsonl"

// JSONStore writes one JSON file per launch under the records directory.
type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
}

// Option configures a JSONStore.
type Option func(*JSONStore)

// WithIndex enables a JSONL index next to the records: index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// NewJSONStore stores records under cfg.Records.Dir, resolved against root.
func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Records.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultDir
	}

	s := &JSONStore{
		rootDir: root,
		dirName: dir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.LaunchStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	d := filepath.FromSlash(s.dirName)
	if filepath.IsAbs(d) {
		return d
	}
	return filepath.Join(s.rootDir, d)
}

// SaveLaunch writes rec atomically with sensitive env values masked. When
// only the index append fails, the returned id is still valid.
func (s *JSONStore) SaveLaunch(rec domain.LaunchRecord) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "launchstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := rec.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := maskRecord(rec)
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	short := shortID(rec.ID)
	if short == "" {
		short = "launch"
	}
	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), short)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "launchstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "launchstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "launchstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, id, filename, toSave); err != nil {
			// The record itself is on disk; report the id with the error.
			return id, &domain.OpError{
				Op:   "launchstore.index",
				Kind: domain.KindExecution,
				Path: filepath.Join(dir, indexFile),
				Err:  err,
			}
		}
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, rec domain.LaunchRecord) error {
	type idx struct {
		ID          string    `json:"id"`
		File        string    `json:"file"`
		Interpreter string    `json:"interpreter"`
		ExitCode    int       `json:"exit_code"`
		StartedAt   time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:          id,
		File:        filename,
		Interpreter: rec.Interpreter.Path,
		ExitCode:    rec.ExitCode(),
		StartedAt:   rec.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func shortID(id string) string {
	id = strings.ReplaceAll(strings.TrimSpace(id), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}

// maskRecord returns a masked copy (does NOT mutate the input).
func maskRecord(rec domain.LaunchRecord) domain.LaunchRecord {
	out := rec
	if rec.Env == nil {
		return out
	}
	out.Env = make(domain.Vars, len(rec.Env))
	for k, v := range rec.Env {
		if isSensitiveKey(k) {
			v = maskValue
		}
		out.Env[k] = v
	}
	return out
}

func isSensitiveKey(k string) bool {
	kk := strings.ToLower(k)
	return strings.Contains(kk, "token") ||
		strings.Contains(kk, "secret") ||
		strings.Contains(kk, "password") ||
		strings.Contains(kk, "credential") ||
		strings.HasSuffix(kk, "_key") ||
		strings.Contains(kk, "api_key") ||
		strings.Contains(kk, "apikey")
}
