// Package cmdline builds single-string command lines from an argument
// vector using the Windows CommandLineToArgvW quoting rules.
package cmdline

import "strings"

// Escape quotes s when it is empty or contains whitespace or a double
// quote. Other strings are returned unchanged.
func Escape(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t\n\v\"") {
		return s
	}
	return Quote(s)
}

// Quote always wraps s in double quotes. Backslashes are doubled only where
// they precede a double quote, and embedded quotes are backslash-escaped.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			for ; slashes > 0; slashes-- {
				b.WriteByte('\\')
			}
			b.WriteByte('\\')
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	// Backslashes before the closing quote would escape it.
	for ; slashes > 0; slashes-- {
		b.WriteByte('\\')
	}
	b.WriteByte('"')
	return b.String()
}

// Join escapes each argument and joins them with single spaces.
func Join(args []string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Escape(a)
	}
	return strings.Join(parts, " ")
}

// Build renders program followed by args. The program path is always
// quoted so paths such as C:\Program Files\... survive unambiguous parsing.
func Build(program string, args []string) string {
	if len(args) == 0 {
		return Quote(program)
	}
	return Quote(program) + " " + Join(args)
}
