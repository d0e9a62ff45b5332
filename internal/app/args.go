// Where: internal/app/args.go
// What: Pre-parse scan for dash-prefixed tokens that are not flags.
// Why: Such tokens are unexpected configurations and must take the selector's diagnostic path, not kong's.
package app

import (
	"strings"

	"github.com/alecthomas/kong"
)

// findUnknownFlag returns the first argument that looks like a flag but
// names none defined in model, together with the positional arguments seen
// before it. Values consumed by flags that take one are skipped; scanning
// stops at the "--" terminator.
func findUnknownFlag(args []string, model *kong.Application) (string, []string) {
	long := map[string]bool{}
	short := map[rune]bool{}
	for _, group := range model.AllFlags(false) {
		for _, flag := range group {
			long[flag.Name] = !flag.IsBool()
			if flag.Short != 0 {
				short[flag.Short] = !flag.IsBool()
			}
		}
	}
	if help := model.HelpFlag; help != nil {
		long[help.Name] = false
		short[help.Short] = false
	}

	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return "", nil
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			positionals = append(positionals, arg)
		case strings.HasPrefix(arg, "--"):
			name, _, inline := strings.Cut(arg[2:], "=")
			takesValue, ok := long[name]
			if !ok {
				return arg, positionals
			}
			if takesValue && !inline {
				i++
			}
		default:
			runes := []rune(arg[1:])
			takesValue, ok := short[runes[0]]
			if !ok {
				return arg, positionals
			}
			if takesValue {
				if len(runes) == 1 {
					i++
				}
				continue
			}
			// Clustered bool shorts.
			for _, r := range runes[1:] {
				if _, ok := short[r]; !ok {
					return arg, positionals
				}
			}
		}
	}
	return "", nil
}
