// Package config loads hook settings from defaults, the optional bundled
// config file, and STANDARDS_HOOK_* environment variables.
package config

import "github.com/conn-castle/standards-hook/internal/hook"

// Config holds the effective hook settings.
type Config struct {
	// InstallDepth is the number of levels from the package directory up to the project root.
	InstallDepth int `toml:"install_depth"`
	// Strict makes copy failures fail the process.
	Strict bool `toml:"strict"`
	// Quiet suppresses the copy summary and failure warnings.
	Quiet bool `toml:"quiet"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{InstallDepth: hook.InstallDepthFromRoot}
}

// Overrides are settings supplied outside the config file.
// Nil pointers and empty strings mean unset.
type Overrides struct {
	InstallDepth *int   `env:"INSTALL_DEPTH"`
	Strict       *bool  `env:"STRICT"`
	Quiet        *bool  `env:"QUIET"`
	PackageDir   string `env:"PACKAGE_DIR"`
	ProjectRoot  string `env:"PROJECT_ROOT"`
}

// Merge returns o with every field set in over replacing its counterpart.
func (o Overrides) Merge(over Overrides) Overrides {
	if over.InstallDepth != nil {
		o.InstallDepth = over.InstallDepth
	}
	if over.Strict != nil {
		o.Strict = over.Strict
	}
	if over.Quiet != nil {
		o.Quiet = over.Quiet
	}
	if over.PackageDir != "" {
		o.PackageDir = over.PackageDir
	}
	if over.ProjectRoot != "" {
		o.ProjectRoot = over.ProjectRoot
	}
	return o
}

// Apply returns c with the overrides that are set.
func (c Config) Apply(o Overrides) Config {
	if o.InstallDepth != nil {
		c.InstallDepth = *o.InstallDepth
	}
	if o.Strict != nil {
		c.Strict = *o.Strict
	}
	if o.Quiet != nil {
		c.Quiet = *o.Quiet
	}
	return c
}
