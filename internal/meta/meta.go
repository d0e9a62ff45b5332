// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding and fixed layout names in one place.
package meta

const (
	// Project Identity
	AppName   = "andci"
	EnvPrefix = "ANDCI"

	// Directory Layout
	OutputDir = "build/android-r23c"
	EnvFile   = ".env"

	// Test Artifact
	ArtifactName = "test_foundation"
	RemoteDir    = "/data/local/tmp"
)
