package domain

// Config is the launcher configuration loaded from livebot.yaml and the
// environment.
type Config struct {
	// Python, when set, is tried before Interpreters. A bare name is looked
	// up on PATH; anything with a separator is treated as a file path.
	Python       string
	Interpreters []InterpreterSpec

	Manifest   string
	EntryPoint string
	DotEnv     string

	Records RecordsConfig
	LogsDir string
}

// InterpreterSpec describes one interpreter candidate. Exactly one of
// Command, Env or File is expected; Path only applies together with Env.
type InterpreterSpec struct {
	Command string
	Env     string
	Path    string
	File    string
}

// RecordsConfig controls launch records. They are off unless enabled.
type RecordsConfig struct {
	Enabled bool
	Dir     string
}

// DefaultConfig tries python on PATH first, then the per-user Windows install
// under LOCALAPPDATA.
func DefaultConfig() Config {
	return Config{
		Interpreters: []InterpreterSpec{
			{Command: "python"},
			{Env: "LOCALAPPDATA", Path: "Programs/Python/Python312/python.exe"},
		},
		Manifest:   "requirements.txt",
		EntryPoint: "livebot.py",
		DotEnv:     ".env",
		Records: RecordsConfig{
			Dir: ".livebot/runs",
		},
		LogsDir: ".livebot/logs",
	}
}

// Candidates builds the ordered candidate list for this configuration.
func (c Config) Candidates() []Candidate {
	out := make([]Candidate, 0, len(c.Interpreters)+1)
	if c.Python != "" {
		out = append(out, Explicit(c.Python))
	}
	for _, s := range c.Interpreters {
		if cand, ok := s.Candidate(); ok {
			out = append(out, cand)
		}
	}
	return out
}

// ProjectSpec describes a project to scaffold.
type ProjectSpec struct {
	Root string
}
