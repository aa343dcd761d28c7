// File: pkg/concat/patterns.go
package concat

import (
	"regexp"
	"strings"
)

// Pattern is a compiled exclusion glob tested against a bare entry name.
type Pattern struct {
	Glob  string         // Original glob text.
	regex *regexp.Regexp // Anchored regular expression equivalent.
}

// CompileGlob converts a glob into a Pattern. '*' matches any run of
// characters, '?' matches exactly one, and everything else is literal.
func CompileGlob(glob string) Pattern {
	return Pattern{Glob: glob, regex: regexp.MustCompile(anchorPattern(wildcardToRegex(escapeSpecialChars(glob))))}
}

// Match reports whether name matches the pattern.
func (p Pattern) Match(name string) bool {
	return p.regex.MatchString(name)
}

// escapeSpecialChars escapes regex special characters except for '*' and '?'.
func escapeSpecialChars(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if strings.ContainsRune(`\.+()|^$[]{}`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// wildcardToRegex converts wildcards '*' and '?' to regex equivalents.
// Names never contain a separator, so '*' is free to match anything.
func wildcardToRegex(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString("(?s:.*)")
		case '?':
			b.WriteString("(?s:.)")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// anchorPattern anchors the regex so it must match the whole name.
func anchorPattern(pattern string) string {
	return "^" + pattern + "$"
}
