package app

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestFindUnknownFlag(t *testing.T) {
	parser, err := kong.New(&CLI{}, kong.Vars{"version": "test"})
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	tests := []struct {
		name        string
		args        []string
		token       string
		positionals []string
	}{
		{name: "none", args: []string{"Debug", "--build-only", "-s", "emu"}},
		{name: "inline value", args: []string{"--serial=emu", "--abi", "x86_64", "Release"}},
		{name: "attached short value", args: []string{"-semu", "Debug"}},
		{name: "help", args: []string{"-h"}},
		{name: "terminator", args: []string{"--", "-Profile"}},
		{name: "short", args: []string{"-Profile"}, token: "-Profile"},
		{name: "long", args: []string{"Debug", "--bogus=1"}, token: "--bogus=1", positionals: []string{"Debug"}},
		{
			name:        "flag value is not positional",
			args:        []string{"--serial", "Release", "Debug", "-x"},
			token:       "-x",
			positionals: []string{"Debug"},
		},
		{name: "cluster", args: []string{"-hq"}, token: "-hq"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, positionals := findUnknownFlag(tc.args, parser.Model)
			if token != tc.token {
				t.Fatalf("expected token %q, got %q", tc.token, token)
			}
			if diff := cmp.Diff(tc.positionals, positionals); diff != "" {
				t.Fatalf("positionals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
