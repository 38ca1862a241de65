package domain

import "time"

// Plan is a fully resolved launch: absolute paths and the extra environment
// for child processes.
type Plan struct {
	Root       string
	Manifest   string
	EntryPoint string
	Env        Vars

	// DotEnv is read after the interpreter is resolved; its variables are
	// added to Env.
	DotEnv string
}

// Vars is a flat set of environment variables.
type Vars map[string]string

// Process describes one child process invocation.
type Process struct {
	Path string
	Args []string
	Dir  string
	Env  Vars
}

// StepStatus is the outcome of one launch step.
type StepStatus string

const (
	StepSkipped StepStatus = "skipped"
	StepOK      StepStatus = "ok"
	StepFailed  StepStatus = "failed"
)

// StepResult records how a step ended and how long it took.
type StepResult struct {
	Status     StepStatus `json:"status"`
	ExitCode   int        `json:"exit_code"`
	DurationMS int64      `json:"duration_ms"`
}

// LaunchRecord is what a launch leaves behind for later inspection.
type LaunchRecord struct {
	ID          string      `json:"id"`
	Root        string      `json:"root"`
	Interpreter Interpreter `json:"interpreter"`
	Manifest    string      `json:"manifest"`
	EntryPoint  string      `json:"entry_point"`
	Install     StepResult  `json:"install"`
	Run         StepResult  `json:"run"`
	Env         Vars        `json:"env,omitempty"`
	Error       string      `json:"error,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	EndedAt     time.Time   `json:"ended_at"`
}

// ExitCode is the status the launcher should exit with for this record.
func (r LaunchRecord) ExitCode() int {
	if r.Install.Status == StepFailed {
		return r.Install.ExitCode
	}
	return r.Run.ExitCode
}
