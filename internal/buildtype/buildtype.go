// Where: internal/buildtype/buildtype.go
// What: Build configuration selection from positional arguments.
// Why: Resolve Release/Debug without touching the build or device steps.
package buildtype

import (
	"fmt"
	"strings"
)

// BuildType is the CMake build configuration passed as CMAKE_BUILD_TYPE.
type BuildType string

const (
	Release BuildType = "Release"
	Debug   BuildType = "Debug"

	// Default is applied when no configuration argument is given.
	Default = Release
)

// Allowed lists the accepted tokens in display order.
var Allowed = []BuildType{Release, Debug}

func (b BuildType) String() string {
	return string(b)
}

// Selection is the outcome of scanning the configuration arguments.
type Selection struct {
	Type    BuildType
	Notices []string
}

// UnexpectedError reports a token outside the allowed configurations.
// Notices holds what the scan reported before reaching it.
type UnexpectedError struct {
	Token   string
	Notices []string
}

func (e *UnexpectedError) Error() string {
	names := make([]string, len(Allowed))
	for i, allowed := range Allowed {
		names[i] = allowed.String()
	}
	return fmt.Sprintf(
		"Unexpected configuration [%s]. Only [%s] configurations are allowed. Terminate",
		e.Token,
		strings.Join(names, ", "),
	)
}

// Parse maps a single token to a BuildType. Matching is case-sensitive.
func Parse(token string) (BuildType, bool) {
	for _, allowed := range Allowed {
		if token == string(allowed) {
			return allowed, true
		}
	}
	return "", false
}

// Select scans args left to right. Every recognized token reassigns the
// selection, so the last one wins. The first unrecognized token stops the
// scan; notices gathered before it travel on the *UnexpectedError.
func Select(args []string) (Selection, error) {
	if len(args) == 0 {
		return Selection{
			Type:    Default,
			Notices: []string{fmt.Sprintf("Build Type not set. %s configuration used as a default", Default)},
		}, nil
	}

	selection := Selection{Type: Default}
	for _, arg := range args {
		value, ok := Parse(arg)
		if !ok {
			return Selection{}, &UnexpectedError{Token: arg, Notices: selection.Notices}
		}
		selection.Type = value
		selection.Notices = append(selection.Notices, fmt.Sprintf("%s configuration is set", value))
	}
	return selection, nil
}
