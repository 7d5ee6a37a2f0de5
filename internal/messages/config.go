package messages

// Config messages for configuration loading and validation.
const (
	// ConfigFailedReadFmt formats config file read errors.
	ConfigFailedReadFmt          = "failed to read config %s: %w"
	ConfigInvalidConfigFmt       = "invalid config %s: %w"
	ConfigInvalidEnvFmt          = "invalid environment configuration: %w"
	ConfigInstallDepthInvalidFmt = "%s: install_depth must be zero or greater (got %d)"
)
