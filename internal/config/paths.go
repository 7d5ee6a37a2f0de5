package config

import "path/filepath"

// FileName is the optional config file shipped next to the bundled trees.
const FileName = "standards-hook.toml"

// EnvPrefix namespaces the environment variables read by LoadEnv.
const EnvPrefix = "STANDARDS_HOOK_"

// FilePath returns the config file location inside packageDir.
func FilePath(packageDir string) string {
	return filepath.Join(packageDir, FileName)
}
