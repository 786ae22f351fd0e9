//go:build !windows

package glob

import "github.com/bmatcuk/doublestar/v4"

const escapes = true

// defaultGlobber implements Globber with default options (case-sensitive).
type defaultGlobber struct{}

// NewGlobber creates a new Globber appropriate for the current platform.
func NewGlobber() Globber {
	return &defaultGlobber{}
}

func (g *defaultGlobber) Validate(pattern string) bool {
	return doublestar.ValidatePattern(literalBraces(pattern))
}

func (g *defaultGlobber) Match(segment, name string) bool {
	return doublestar.MatchUnvalidated(literalBraces(segment), name)
}

func quoteBrace(c byte) string {
	return `\` + string(c)
}
