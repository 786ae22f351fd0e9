//go:build !windows

package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMeta(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"plain.txt", false},
		{"*.txt", true},
		{"file?.log", true},
		{"[abc]", true},
		{"{a,b}", false},
		{`\*.txt`, false},
		{`a\[1\].txt`, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMeta(tt.in))
		})
	}
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "*.txt", Unescape(`\*.txt`))
	assert.Equal(t, "a[1].txt", Unescape(`a\[1\].txt`))
	assert.Equal(t, "plain", Unescape("plain"))
	assert.Equal(t, `trailing\`, Unescape(`trailing\`))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"single segment", "*.txt", []string{"*.txt"}},
		{"relative", "src/**/*.go", []string{"src", "**", "*.go"}},
		{"absolute", "/var/log/*.log", []string{"var", "log", "*.log"}},
		{"repeated separators", "a//b/", []string{"a", "b"}},
		{"dot prefix", "./*.txt", []string{".", "*.txt"}},
		{"braces do not group", "{a/b,c}/x", []string{"{a", "b,c}", "x"}},
		{"slash inside class", "[/]x/y", []string{"[/]x", "y"}},
		{"escaped brace", `\{a/b`, []string{`\{a`, "b"}},
		{"empty", "", nil},
		{"root only", "/", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.pattern))
		})
	}
}

func TestGlobberValidate(t *testing.T) {
	g := NewGlobber()

	assert.True(t, g.Validate("*.txt"))
	assert.True(t, g.Validate("src/**/*.{go,mod}"))
	assert.True(t, g.Validate("no/meta/at/all"))
	assert.False(t, g.Validate("["))
	assert.False(t, g.Validate("files/[abc"))
	assert.True(t, g.Validate("{a,b"))
	assert.True(t, g.Validate("}"))
	assert.True(t, g.Validate("[{]"))
}

func TestGlobberMatch(t *testing.T) {
	g := NewGlobber()

	tests := []struct {
		segment string
		name    string
		want    bool
	}{
		{"*.txt", "a.txt", true},
		{"*.txt", "c.log", false},
		{"*", ".hidden", true},
		{"?.txt", "ab.txt", false},
		{"[ab].txt", "b.txt", true},
		{"{a,c}.log", "c.log", false},
		{"{a,c}.log", "{a,c}.log", true},
		{"*{*", "a{b", true},
		{"}", "}", true},
		{"[{}]", "}", true},
		{`\*`, "*", true},
		{`\*`, "x", false},
		{"*.TXT", "a.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.segment+"~"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Match(tt.segment, tt.name))
		})
	}
}

func TestLiteralBraces(t *testing.T) {
	assert.Equal(t, "*.txt", literalBraces("*.txt"))
	assert.Equal(t, `a\{b`, literalBraces("a{b"))
	assert.Equal(t, `\{a,b\}`, literalBraces("{a,b}"))
	assert.Equal(t, `\{a`, literalBraces(`\{a`), "escaped braces stay as they are")
	assert.Equal(t, "[{}]", literalBraces("[{}]"), "classes are left alone")
}
