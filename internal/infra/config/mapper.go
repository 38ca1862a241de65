package config

import (
	"fmt"
	"strings"

	"github.com/raji2203030/livebot/internal/domain"
)

// MapConfig applies the parsed file on top of defaults. A non-empty
// interpreters list replaces the default candidates entirely.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if s := strings.TrimSpace(y.Python); s != "" {
		cfg.Python = s
	}

	if len(y.Interpreters) > 0 {
		specs := make([]domain.InterpreterSpec, 0, len(y.Interpreters))
		for i, it := range y.Interpreters {
			field := fmt.Sprintf("livebot.interpreters[%d]", i)
			spec, err := mapInterpreter(it)
			if err != nil {
				return domain.Config{}, invalidField(path, field, err.Error())
			}
			specs = append(specs, spec)
		}
		cfg.Interpreters = specs
	}

	if s := strings.TrimSpace(y.Manifest); s != "" {
		cfg.Manifest = s
	}
	if s := strings.TrimSpace(y.EntryPoint); s != "" {
		cfg.EntryPoint = s
	}
	if s := strings.TrimSpace(y.DotEnv); s != "" {
		cfg.DotEnv = s
	}
	if s := strings.TrimSpace(y.LogsDir); s != "" {
		cfg.LogsDir = s
	}
	if y.Records.Enabled != nil {
		cfg.Records.Enabled = *y.Records.Enabled
	}
	if s := strings.TrimSpace(y.Records.Dir); s != "" {
		cfg.Records.Dir = s
	}

	return cfg, nil
}

func mapInterpreter(it YAMLInterpreter) (domain.InterpreterSpec, error) {
	spec := domain.InterpreterSpec{
		Command: strings.TrimSpace(it.Command),
		Env:     strings.TrimSpace(it.Env),
		Path:    strings.TrimSpace(it.Path),
		File:    strings.TrimSpace(it.File),
	}

	set := 0
	for _, v := range []string{spec.Command, spec.Env, spec.File} {
		if v != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return spec, fmt.Errorf("one of command, env or file is required")
	case set > 1:
		return spec, fmt.Errorf("command, env and file are mutually exclusive")
	case spec.Path != "" && spec.Env == "":
		return spec, fmt.Errorf("path is only valid together with env")
	}
	return spec, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
