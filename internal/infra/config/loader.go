package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/raji2203030/livebot/internal/domain"
)

// FileName is the optional per-project configuration file.
const FileName = "livebot.yaml"

// EnvPrefix prefixes every environment override, e.g. LIVEBOT_ENTRYPOINT.
const EnvPrefix = "LIVEBOT"

// Load reads livebot.yaml from root when present, falls back to defaults
// otherwise, and then applies LIVEBOT_* overrides.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	cfg, err := LoadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), err
		}
		cfg = domain.DefaultConfig()
	}
	return ApplyEnv(cfg, newEnvViper()), nil
}

// LoadFile reads a config file that must exist. Environment overrides are not
// applied.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y.Livebot)
}

// LoadExplicit is Load for a user supplied file path.
func LoadExplicit(path string) (domain.Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg, newEnvViper()), nil
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ApplyEnv overlays values found in v on top of cfg.
func ApplyEnv(cfg domain.Config, v *viper.Viper) domain.Config {
	if s := strings.TrimSpace(v.GetString("python")); s != "" {
		cfg.Python = s
	}
	if s := strings.TrimSpace(v.GetString("manifest")); s != "" {
		cfg.Manifest = s
	}
	if s := strings.TrimSpace(v.GetString("entrypoint")); s != "" {
		cfg.EntryPoint = s
	}
	if s := strings.TrimSpace(v.GetString("dotenv")); s != "" {
		cfg.DotEnv = s
	}
	if s := strings.TrimSpace(v.GetString("logs_dir")); s != "" {
		cfg.LogsDir = s
	}
	if v.IsSet("records.enabled") && strings.TrimSpace(v.GetString("records.enabled")) != "" {
		cfg.Records.Enabled = v.GetBool("records.enabled")
	}
	if s := strings.TrimSpace(v.GetString("records.dir")); s != "" {
		cfg.Records.Dir = s
	}
	return cfg
}
