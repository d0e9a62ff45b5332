// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/andci/internal/constants"
	"github.com/poruru/andci/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX with the given suffix.
// Example: HostEnvKey("ABI") returns "ANDCI_ABI" when ENV_PREFIX is unset.
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv(constants.EnvPrefixOverride))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("ABI") returns the value of ANDCI_ABI.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}
