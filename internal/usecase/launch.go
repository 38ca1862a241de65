package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

// Launch resolves an interpreter, installs the manifest when present and runs
// the entry point. Steps run strictly in that order and are never retried.
type Launch struct {
	host    ports.HostProvider
	resolve domain.Resolver
	runner  ports.ProcessRunner
	files   ports.FileChecker
	store   ports.LaunchStore
	envs    ports.EnvLoader

	out    io.Writer
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// LaunchOption configures a Launch.
type LaunchOption func(*Launch)

// WithStore enables launch records. A nil store disables them.
func WithStore(s ports.LaunchStore) LaunchOption {
	return func(uc *Launch) { uc.store = s }
}

// WithOutput sets where the resolved interpreter is announced.
func WithOutput(w io.Writer) LaunchOption {
	return func(uc *Launch) {
		if w != nil {
			uc.out = w
		}
	}
}

// WithEnvLoader reads Plan.DotEnv once an interpreter has been resolved.
func WithEnvLoader(l ports.EnvLoader) LaunchOption {
	return func(uc *Launch) { uc.envs = l }
}

// WithLogger sets the structured logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) LaunchOption {
	return func(uc *Launch) {
		if l != nil {
			uc.logger = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) LaunchOption {
	return func(uc *Launch) { uc.now = now }
}

// WithIDs replaces uuid.NewString as the record ID source.
func WithIDs(newID func() string) LaunchOption {
	return func(uc *Launch) { uc.newID = newID }
}

// NewLaunch builds a launch that tries candidates in order.
func NewLaunch(hp ports.HostProvider, candidates []domain.Candidate, pr ports.ProcessRunner, fc ports.FileChecker, opts ...LaunchOption) *Launch {
	uc := &Launch{
		host:    hp,
		resolve: domain.FirstOf(candidates...),
		runner:  pr,
		files:   fc,
		out:     io.Discard,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Resolve runs only the resolution step.
func (uc *Launch) Resolve() (domain.Interpreter, error) {
	interp, err := uc.resolve(uc.host.Host())
	if err != nil {
		uc.logger.Warn("launch.resolve.not_found")
		return domain.Interpreter{}, err
	}
	uc.logger.Info("launch.resolve.ok", "path", interp.Path, "candidate", interp.Candidate)
	return interp, nil
}

// Execute performs a full launch. A non-zero child exit comes back as a
// *domain.ExitError; the record is returned in every case after resolution
// succeeded. The dotenv file is only read after resolution, so a missing
// interpreter is always reported as such.
func (uc *Launch) Execute(ctx context.Context, plan domain.Plan) (domain.LaunchRecord, error) {
	interp, err := uc.Resolve()
	if err != nil {
		return domain.LaunchRecord{}, err
	}

	fmt.Fprintf(uc.out, "Using Python: %s\n", interp.Path)

	rec := domain.LaunchRecord{
		ID:          uc.newID(),
		Root:        plan.Root,
		Interpreter: interp,
		Manifest:    plan.Manifest,
		EntryPoint:  plan.EntryPoint,
		Install:     domain.StepResult{Status: domain.StepSkipped},
		Run:         domain.StepResult{Status: domain.StepSkipped},
		Env:         plan.Env,
		StartedAt:   uc.now(),
	}

	if uc.envs != nil && plan.DotEnv != "" {
		vars, err := uc.envs.LoadEnv(plan.DotEnv)
		if err != nil {
			uc.logger.Error("launch.dotenv.failed", "path", plan.DotEnv, "err", err)
			return uc.finish(rec, err)
		}
		plan.Env = mergeVars(plan.Env, vars)
		rec.Env = plan.Env
	}

	if err := ctx.Err(); err != nil {
		return uc.finish(rec, err)
	}

	if uc.files.Exists(plan.Manifest) {
		res, err := uc.step(ctx, domain.StepInstall, domain.Process{
			Path: interp.Path,
			Args: []string{"-m", "pip", "install", "--no-input", "-r", plan.Manifest},
			Dir:  plan.Root,
			Env:  plan.Env,
		})
		rec.Install = res
		if err != nil {
			return uc.finish(rec, err)
		}
		if res.Status == domain.StepFailed {
			return uc.finish(rec, &domain.ExitError{Step: domain.StepInstall, Code: res.ExitCode})
		}
	} else {
		uc.logger.Debug("launch.install.skipped", "manifest", plan.Manifest)
	}

	if err := ctx.Err(); err != nil {
		return uc.finish(rec, err)
	}

	res, err := uc.step(ctx, domain.StepRun, domain.Process{
		Path: interp.Path,
		Args: []string{plan.EntryPoint},
		Dir:  plan.Root,
		Env:  plan.Env,
	})
	rec.Run = res
	if err != nil {
		return uc.finish(rec, err)
	}
	if res.Status == domain.StepFailed {
		return uc.finish(rec, &domain.ExitError{Step: domain.StepRun, Code: res.ExitCode})
	}
	return uc.finish(rec, nil)
}

func (uc *Launch) step(ctx context.Context, step domain.Step, p domain.Process) (domain.StepResult, error) {
	uc.logger.Info("launch.step.start", "step", step, "path", p.Path, "args", p.Args)

	start := uc.now()
	code, err := uc.runner.Run(ctx, p)
	res := domain.StepResult{
		Status:     domain.StepOK,
		ExitCode:   code,
		DurationMS: uc.now().Sub(start).Milliseconds(),
	}
	if err != nil {
		res.Status = domain.StepFailed
		if res.ExitCode == 0 {
			res.ExitCode = 1
		}
		uc.logger.Error("launch.step.error", "step", step, "err", err)
		return res, &domain.OpError{
			Op:   "launch." + string(step),
			Kind: domain.KindExecution,
			Path: p.Path,
			Err:  err,
		}
	}
	if code != 0 {
		res.Status = domain.StepFailed
	}

	uc.logger.Info("launch.step.done", "step", step, "exit_code", code, "duration_ms", res.DurationMS)
	return res, nil
}

func (uc *Launch) finish(rec domain.LaunchRecord, err error) (domain.LaunchRecord, error) {
	rec.EndedAt = uc.now()
	if err != nil {
		rec.Error = err.Error()
	}

	if uc.store != nil {
		id, serr := uc.store.SaveLaunch(rec)
		if serr != nil {
			// id is set when the record landed but its index line did not.
			uc.logger.Warn("launch.record.save_failed", "id", id, "err", serr)
		} else {
			uc.logger.Debug("launch.record.saved", "id", id)
		}
	}
	return rec, err
}

// mergeVars returns base with extra laid over it; neither input is modified.
func mergeVars(base, extra domain.Vars) domain.Vars {
	if len(extra) == 0 {
		return base
	}
	out := make(domain.Vars, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
