// Where: internal/shutil/shutil.go
// What: POSIX shell quoting for command lines.
// Why: adb joins "adb shell" operands into one line that the device shell re-parses.
package shutil

import "strings"

// isPlain reports whether c needs no quoting anywhere in a word.
func isPlain(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("_-@%+:,./", c) >= 0
}

// Escape returns s single-quoted for a shell, or unchanged when every byte
// is plain. '=' is plain except in first position, where zsh expands it.
func Escape(s string) string {
	safe := s != ""
	for i := 0; i < len(s) && safe; i++ {
		safe = isPlain(s[i]) || (s[i] == '=' && i > 0)
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// EscapeSlice escapes each element and joins them with spaces.
func EscapeSlice(args []string) string {
	escaped := make([]string, len(args))
	for i, arg := range args {
		escaped[i] = Escape(arg)
	}
	return strings.Join(escaped, " ")
}

// CommandLine renders name and args as a copy-pasteable shell line.
func CommandLine(name string, args ...string) string {
	return EscapeSlice(append([]string{name}, args...))
}
