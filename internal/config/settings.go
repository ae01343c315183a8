package config

import (
	"fmt"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/hash"
)

// State backends.
const (
	BackendFiles  = "files"
	BackendSQLite = "sqlite"
)

// Settings are the tunables read from settings.yaml and the environment.
type Settings struct {
	Hash         string     `yaml:"hash"`
	StateBackend string     `yaml:"state_backend"`
	LogLevel     slog.Level `yaml:"log_level"`
}

// NewDefaultSettings returns the settings used when nothing is configured.
func NewDefaultSettings() *Settings {
	return &Settings{
		Hash:         hash.Default,
		StateBackend: BackendFiles,
		LogLevel:     slog.LevelWarn,
	}
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Hash, validation.Required, validation.In(hash.SHA256, hash.XXH3)),
		validation.Field(&s.StateBackend, validation.Required, validation.In(BackendFiles, BackendSQLite)),
	)
}

// LoadSettings reads path (if present) on top of the defaults, applies
// environment overrides and validates the result. A missing file is not
// an error.
func LoadSettings(fsys fs.FS, path string) (*Settings, error) {
	s := NewDefaultSettings()

	data, err := fsys.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), s); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	case fsys.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := s.applyEnv(); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return s, nil
}

func (s *Settings) applyEnv() error {
	if v := os.Getenv(EnvHash); v != "" {
		s.Hash = v
	}
	if v := os.Getenv(EnvStateBackend); v != "" {
		s.StateBackend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLogLevel, v, err)
		}
	}
	return nil
}
