//go:build windows

package glob

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Backslash is a path separator on Windows, never an escape.
const escapes = false

// windowsGlobber implements Globber with case-insensitive matching,
// appropriate for Windows file systems.
type windowsGlobber struct{}

// NewGlobber creates a new Globber appropriate for the current platform.
// On Windows, this returns a case-insensitive globber.
func NewGlobber() Globber {
	return &windowsGlobber{}
}

func (g *windowsGlobber) Validate(pattern string) bool {
	return doublestar.ValidatePattern(literalBraces(pattern))
}

func (g *windowsGlobber) Match(segment, name string) bool {
	return doublestar.MatchUnvalidated(literalBraces(strings.ToLower(segment)), strings.ToLower(name))
}

// quoteBrace uses a one-character class since '\\' is not an escape here
func quoteBrace(c byte) string {
	return "[" + string(c) + "]"
}
