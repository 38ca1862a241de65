package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raji2203030/livebot/internal/domain"
)

// --- fakes ---

type fakeHostProvider struct {
	onPath map[string]string
}

func (f fakeHostProvider) Host() domain.Host {
	return domain.Host{
		LookPath: func(name string) (string, error) {
			if p, ok := f.onPath[name]; ok {
				return p, nil
			}
			return "", errors.New("not found")
		},
	}
}

type fakeFiles map[string]bool

func (f fakeFiles) Exists(path string) bool { return f[path] }

// recordingRunner returns a fixed exit code per step (keyed by the first arg)
// and captures every process it was asked to run.
type recordingRunner struct {
	codes map[string]int
	errs  map[string]error
	calls []domain.Process
}

func (r *recordingRunner) Run(_ context.Context, p domain.Process) (int, error) {
	r.calls = append(r.calls, p)
	key := ""
	if len(p.Args) > 0 {
		key = p.Args[0]
	}
	return r.codes[key], r.errs[key]
}

type fakeStore struct {
	saved []domain.LaunchRecord
	err   error
}

func (s *fakeStore) SaveLaunch(rec domain.LaunchRecord) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, rec)
	return rec.ID, nil
}

func testPlan() domain.Plan {
	return domain.Plan{
		Root:       "/proj",
		Manifest:   "/proj/requirements.txt",
		EntryPoint: "/proj/livebot.py",
		Env:        domain.Vars{"SHEET_ID": "abc"},
	}
}

func newTestLaunch(onPath map[string]string, files fakeFiles, r *recordingRunner, opts ...LaunchOption) *Launch {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	base := []LaunchOption{
		WithClock(func() time.Time { return fixed }),
		WithIDs(func() string { return "launch-1" }),
	}
	return NewLaunch(
		fakeHostProvider{onPath: onPath},
		domain.DefaultConfig().Candidates(),
		r,
		files,
		append(base, opts...)...,
	)
}

// --- tests ---

func TestLaunch_NoInterpreter(t *testing.T) {
	r := &recordingRunner{}
	store := &fakeStore{}
	var out bytes.Buffer
	uc := newTestLaunch(nil, fakeFiles{"/proj/requirements.txt": true}, r, WithStore(store), WithOutput(&out))

	_, err := uc.Execute(context.Background(), testPlan())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.ErrorIs(t, err, domain.ErrInterpreterNotFound)
	assert.Equal(t, 1, domain.ExitCode(err))
	assert.Empty(t, r.calls, "install and run must not be attempted")
	assert.Empty(t, store.saved)
	assert.Empty(t, out.String())
}

func TestLaunch_ManifestAbsent_SkipsInstall(t *testing.T) {
	r := &recordingRunner{codes: map[string]int{"/proj/livebot.py": 0}}
	var out bytes.Buffer
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{}, r, WithOutput(&out))

	rec, err := uc.Execute(context.Background(), testPlan())
	require.NoError(t, err)

	require.Len(t, r.calls, 1)
	assert.Equal(t, domain.Process{
		Path: "/usr/bin/python",
		Args: []string{"/proj/livebot.py"},
		Dir:  "/proj",
		Env:  domain.Vars{"SHEET_ID": "abc"},
	}, r.calls[0])
	assert.Equal(t, domain.StepSkipped, rec.Install.Status)
	assert.Equal(t, domain.StepOK, rec.Run.Status)
	assert.Equal(t, "Using Python: /usr/bin/python\n", out.String())
}

func TestLaunch_ManifestPresent_InstallsOnceThenRuns(t *testing.T) {
	r := &recordingRunner{}
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{"/proj/requirements.txt": true}, r)

	_, err := uc.Execute(context.Background(), testPlan())
	require.NoError(t, err)

	require.Len(t, r.calls, 2)
	assert.Equal(t, []string{"-m", "pip", "install", "--no-input", "-r", "/proj/requirements.txt"}, r.calls[0].Args)
	assert.Equal(t, []string{"/proj/livebot.py"}, r.calls[1].Args)
}

func TestLaunch_RunExitCodePassesThrough(t *testing.T) {
	r := &recordingRunner{codes: map[string]int{"/proj/livebot.py": 7}}
	store := &fakeStore{}
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{}, r, WithStore(store))

	rec, err := uc.Execute(context.Background(), testPlan())
	require.Error(t, err)

	var ee *domain.ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, domain.StepRun, ee.Step)
	assert.Equal(t, 7, domain.ExitCode(err))
	assert.Equal(t, 7, rec.ExitCode())

	require.Len(t, store.saved, 1)
	assert.Equal(t, "launch-1", store.saved[0].ID)
	assert.Equal(t, domain.StepFailed, store.saved[0].Run.Status)
	assert.NotEmpty(t, store.saved[0].Error)
}

func TestLaunch_InstallFailureIsFatal(t *testing.T) {
	r := &recordingRunner{codes: map[string]int{"-m": 2}}
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{"/proj/requirements.txt": true}, r)

	rec, err := uc.Execute(context.Background(), testPlan())
	require.Error(t, err)
	assert.Equal(t, 2, domain.ExitCode(err))
	assert.Len(t, r.calls, 1, "app must not run after a failed install")
	assert.Equal(t, domain.StepFailed, rec.Install.Status)
	assert.Equal(t, domain.StepSkipped, rec.Run.Status)
	assert.Equal(t, 2, rec.ExitCode())
}

func TestLaunch_StartFailureIsExecutionError(t *testing.T) {
	r := &recordingRunner{errs: map[string]error{"/proj/livebot.py": errors.New("exec format error")}}
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{}, r)

	rec, err := uc.Execute(context.Background(), testPlan())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
	assert.Equal(t, 1, domain.ExitCode(err))
	assert.Equal(t, 1, rec.Run.ExitCode)
}

func TestLaunch_StoreFailureDoesNotChangeOutcome(t *testing.T) {
	r := &recordingRunner{}
	store := &fakeStore{err: errors.New("disk full")}
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{}, r, WithStore(store), WithLogger(logger))

	_, err := uc.Execute(context.Background(), testPlan())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "launch.record.save_failed")
	assert.Contains(t, logs.String(), "disk full")
}

func TestLaunch_CancelledContextStopsBeforeInstall(t *testing.T) {
	r := &recordingRunner{}
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{"/proj/requirements.txt": true}, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, testPlan())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.calls)
}

func TestLaunch_Resolve(t *testing.T) {
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{}, &recordingRunner{})

	got, err := uc.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/python", got.Path)
	assert.Equal(t, "python (PATH)", got.Candidate)
}

type fakeEnvLoader struct {
	vars  domain.Vars
	err   error
	calls []string
}

func (f *fakeEnvLoader) LoadEnv(path string) (domain.Vars, error) {
	f.calls = append(f.calls, path)
	return f.vars, f.err
}

func TestLaunch_DotEnvReadOnlyAfterResolution(t *testing.T) {
	envs := &fakeEnvLoader{err: errors.New("unexpected character")}
	r := &recordingRunner{}
	uc := newTestLaunch(nil, fakeFiles{}, r, WithEnvLoader(envs))

	plan := testPlan()
	plan.DotEnv = "/proj/.env"
	_, err := uc.Execute(context.Background(), plan)
	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
	assert.Empty(t, envs.calls)
	assert.Empty(t, r.calls)
}

func TestLaunch_DotEnvMergedIntoChildEnv(t *testing.T) {
	envs := &fakeEnvLoader{vars: domain.Vars{"SHOW_TABLE": "1"}}
	r := &recordingRunner{}
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{}, r, WithEnvLoader(envs))

	plan := testPlan()
	plan.DotEnv = "/proj/.env"
	rec, err := uc.Execute(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, []string{"/proj/.env"}, envs.calls)
	require.Len(t, r.calls, 1)
	want := domain.Vars{"SHEET_ID": "abc", "SHOW_TABLE": "1"}
	assert.Equal(t, want, r.calls[0].Env)
	assert.Equal(t, want, rec.Env)
	assert.Equal(t, domain.Vars{"SHEET_ID": "abc"}, plan.Env, "caller's plan must not be modified")
}

func TestLaunch_DotEnvErrorStopsBeforeInstall(t *testing.T) {
	envs := &fakeEnvLoader{err: &domain.OpError{Op: "dotenv.load", Kind: domain.KindInvalidConfig}}
	r := &recordingRunner{}
	store := &fakeStore{}
	uc := newTestLaunch(map[string]string{"python": "/usr/bin/python"}, fakeFiles{"/proj/requirements.txt": true}, r, WithEnvLoader(envs), WithStore(store))

	plan := testPlan()
	plan.DotEnv = "/proj/.env"
	_, err := uc.Execute(context.Background(), plan)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	assert.Empty(t, r.calls)
	require.Len(t, store.saved, 1)
	assert.Equal(t, domain.StepSkipped, store.saved[0].Install.Status)
}
