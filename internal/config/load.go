package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/standards-hook/internal/messages"
)

// ErrConfigValidation wraps validation failures, as opposed to TOML syntax,
// environment parsing, or filesystem errors.
var ErrConfigValidation = errors.New("config validation failed")

// readFile is a seam for tests.
var readFile = os.ReadFile

// LoadFile reads the config file at path on top of Default.
// A missing file yields Default without error.
func LoadFile(path string) (Config, error) {
	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf(messages.ConfigFailedReadFmt, path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func ParseConfig(data []byte, source string) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// LoadEnv reads STANDARDS_HOOK_* overrides from environ.
// A nil environ reads the process environment.
func LoadEnv(environ map[string]string) (Overrides, error) {
	var out Overrides
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&out, opts); err != nil {
		return Overrides{}, fmt.Errorf(messages.ConfigInvalidEnvFmt, err)
	}
	return out, nil
}

// Load resolves the effective settings for packageDir: defaults, then the
// bundled config file, then overrides.
func Load(packageDir string, overrides Overrides) (Config, error) {
	path := FilePath(packageDir)
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Apply(overrides)
	if err := cfg.Validate(path); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}
