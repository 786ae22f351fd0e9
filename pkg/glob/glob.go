// Package glob provides the wildcard primitives the resolver expands
// patterns with. Validation and matching are delegated to doublestar;
// this package adds segment splitting so patterns can be expanded one
// directory level at a time.
//
// Supported syntax: '*', '?', '[class]', '**' as a whole segment, and
// '\' escapes on non-Windows platforms. Braces are ordinary characters.
package glob

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DoubleStar is the segment that matches zero or more directories
const DoubleStar = "**"

// Globber matches single path segments.
// Platform-specific implementations control options like case sensitivity.
type Globber interface {
	// Validate reports whether pattern is syntactically valid.
	Validate(pattern string) bool
	// Match reports whether name matches a single-segment pattern.
	Match(segment, name string) bool
}

// ErrBadPattern is returned for syntactically invalid patterns
var ErrBadPattern = doublestar.ErrBadPattern

// HasMeta reports whether s contains an unescaped wildcard metacharacter
func HasMeta(s string) bool {
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = escapes
		case '*', '?', '[':
			return true
		}
	}
	return false
}

// Unescape removes escaping backslashes from a literal segment
func Unescape(s string) string {
	if !escapes || !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Split breaks a slash separated pattern into segments. Separators inside
// bracket expressions do not split. Empty segments produced by
// repeated or leading separators are dropped; callers inspect the pattern
// itself for a leading or trailing '/'.
func Split(pattern string) []string {
	var segments []string
	inClass, escaped := false, false
	start := 0
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && escapes:
			escaped = true
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '/':
			if i > start {
				segments = append(segments, pattern[start:i])
			}
			start = i + 1
		}
	}
	if start < len(pattern) {
		segments = append(segments, pattern[start:])
	}
	return segments
}

// literalBraces rewrites '{' and '}' outside bracket expressions so
// doublestar matches them as plain characters instead of alternation
func literalBraces(pattern string) string {
	if !strings.ContainsAny(pattern, "{}") {
		return pattern
	}
	var b strings.Builder
	b.Grow(len(pattern) + 4)
	inClass, escaped := false, false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && escapes:
			escaped = true
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '{' || c == '}':
			b.WriteString(quoteBrace(c))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
