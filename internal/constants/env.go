// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Toolchain
	EnvAndroidHome = "ANDROID_HOME"

	// Brand prefix override consumed by envutil.HostEnvKey.
	EnvPrefixOverride = "ENV_PREFIX"

	// Host-level suffixes, combined with the brand prefix (ANDCI_<suffix>).
	HostSuffixNDKVersion = "NDK_VERSION"
	HostSuffixABI        = "ABI"
	HostSuffixGenerator  = "GENERATOR"
	HostSuffixSerial     = "SERIAL"
	HostSuffixOutputDir  = "OUTPUT_DIR"
	HostSuffixRemoteDir  = "REMOTE_DIR"
)
