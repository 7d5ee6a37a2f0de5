package config

import (
	"fmt"

	"github.com/conn-castle/standards-hook/internal/messages"
)

// Validate ensures the settings are usable.
// source names the origin of the settings in error messages.
func (c Config) Validate(source string) error {
	if c.InstallDepth < 0 {
		return fmt.Errorf(messages.ConfigInstallDepthInvalidFmt, source, c.InstallDepth)
	}
	return nil
}
