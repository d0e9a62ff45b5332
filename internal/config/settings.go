// Where: internal/config/settings.go
// What: Effective build/test settings and their resolution.
// Why: Replace hard-coded script constants with one value resolved from defaults, env and flags.
package config

import (
	"io"
	"os"
	"path"
	"strings"

	"github.com/poruru/andci/internal/constants"
	"github.com/poruru/andci/internal/envutil"
	"github.com/poruru/andci/internal/meta"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNDKVersion = "23.2.8568313"
	DefaultABI        = "arm64-v8a"
	DefaultGenerator  = "Ninja"
)

// Settings holds every fixed input of a build-and-test run.
type Settings struct {
	OutputDir   string `yaml:"output_dir"`
	AndroidHome string `yaml:"android_home"`
	NDKVersion  string `yaml:"ndk_version"`
	ABI         string `yaml:"abi"`
	Generator   string `yaml:"generator"`
	Artifact    string `yaml:"artifact"`
	RemoteDir   string `yaml:"remote_dir"`
	Serial      string `yaml:"serial,omitempty"`
}

// Overrides carries flag values; empty fields leave the lower layer intact.
type Overrides struct {
	OutputDir  string
	NDKVersion string
	ABI        string
	Serial     string
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() Settings {
	return Settings{
		OutputDir:  meta.OutputDir,
		NDKVersion: DefaultNDKVersion,
		ABI:        DefaultABI,
		Generator:  DefaultGenerator,
		Artifact:   meta.ArtifactName,
		RemoteDir:  meta.RemoteDir,
	}
}

// Resolve layers defaults, environment and flag overrides, in that order.
// ANDROID_HOME is copied verbatim; an unset value stays empty.
func Resolve(overrides Overrides) Settings {
	s := DefaultSettings()
	s.AndroidHome = os.Getenv(constants.EnvAndroidHome)

	// The adb convention is honoured for the serial before our own
	// prefixed variable and the flag.
	s.Serial = strings.TrimSpace(os.Getenv("ANDROID_SERIAL"))

	apply(&s.NDKVersion, envutil.GetHostEnv(constants.HostSuffixNDKVersion))
	apply(&s.ABI, envutil.GetHostEnv(constants.HostSuffixABI))
	apply(&s.Generator, envutil.GetHostEnv(constants.HostSuffixGenerator))
	apply(&s.Serial, envutil.GetHostEnv(constants.HostSuffixSerial))
	apply(&s.OutputDir, envutil.GetHostEnv(constants.HostSuffixOutputDir))
	apply(&s.RemoteDir, envutil.GetHostEnv(constants.HostSuffixRemoteDir))

	apply(&s.OutputDir, overrides.OutputDir)
	apply(&s.NDKVersion, overrides.NDKVersion)
	apply(&s.ABI, overrides.ABI)
	apply(&s.Serial, overrides.Serial)
	return s
}

func apply(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}

// NDKDir is <android home>/ndk/<version>. The path is built by plain
// concatenation so an empty home still yields a (failing) path for cmake
// to report.
func (s Settings) NDKDir() string {
	return s.AndroidHome + "/ndk/" + s.NDKVersion
}

// ToolchainFile is the NDK's CMake toolchain file.
func (s Settings) ToolchainFile() string {
	return s.NDKDir() + "/build/cmake/android.toolchain.cmake"
}

// RemoteArtifact is the artifact's absolute path on the device.
func (s Settings) RemoteArtifact() string {
	return path.Join(s.RemoteDir, s.Artifact)
}

// WriteYAML renders the settings as YAML.
func (s Settings) WriteYAML(out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(&s); err != nil {
		return err
	}
	return encoder.Close()
}
