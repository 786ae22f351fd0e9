package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pathglob/pkg/errors"
	"github.com/arthur-debert/pathglob/pkg/types"
	"github.com/arthur-debert/pathglob/pkg/ui"
)

// feed plays a fixed sequence of events into r
func feed(t *testing.T, r Renderer) {
	t.Helper()
	require.NoError(t, r.Begin("docs", types.ModeDirectory))
	require.NoError(t, r.Path("docs"))
	require.NoError(t, r.Path("docs/a.md"))
	require.NoError(t, r.Failure("docs/locked", fmt.Errorf("permission denied")))
	require.NoError(t, r.Invalid("[", errors.New(errors.ErrInvalidPattern, "invalid glob pattern")))
	require.NoError(t, r.Begin("*.go", types.ModeGlob))
	require.NoError(t, r.Flush())
}

func TestTextRenderer(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(Options{Format: ui.FormatText, Out: &out, ErrOut: &errOut})
	feed(t, r)

	assert.Equal(t, "docs\ndocs/a.md\n", out.String())
	assert.Equal(t,
		"error: permission denied\nerror: [INVALID_PATTERN] invalid glob pattern\n",
		errOut.String())
}

func TestTextRendererNull(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(Options{Format: ui.FormatText, Null: true, Out: &out, ErrOut: &errOut})
	feed(t, r)

	assert.Equal(t, "docs\x00docs/a.md\x00", out.String())
}

func TestTextRendererShowMode(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(Options{Format: ui.FormatAuto, ShowMode: true, Out: &out, ErrOut: &errOut})
	feed(t, r)

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	assert.Equal(t, []string{
		"docs: directory",
		"error: permission denied",
		"error: [INVALID_PATTERN] invalid glob pattern",
		"*.go: glob",
	}, lines)
	assert.Equal(t, "docs\ndocs/a.md\n", out.String())
}

func TestTextRendererDefaultsErrOut(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{Format: ui.FormatText, Out: &out})
	require.NoError(t, r.Failure("x", fmt.Errorf("boom")))
	assert.Equal(t, "error: boom\n", out.String())
}

func TestTermRenderer(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(Options{Format: ui.FormatTerminal, ShowMode: true, Out: &out, ErrOut: &errOut})
	feed(t, r)

	assert.Contains(t, out.String(), "docs/a.md")
	assert.Contains(t, errOut.String(), "docs/locked")
	assert.Contains(t, errOut.String(), "permission denied")
	assert.Contains(t, errOut.String(), "(directory)")
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{Format: ui.FormatJSON, Out: &out})
	feed(t, r)

	var results []PatternResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 3)

	assert.Equal(t, PatternResult{
		Pattern: "docs",
		Mode:    "directory",
		Paths:   []string{"docs", "docs/a.md"},
		Errors:  []string{"permission denied"},
	}, results[0])
	assert.Equal(t, "[", results[1].Pattern)
	assert.Empty(t, results[1].Mode)
	assert.Empty(t, results[1].Paths)
	assert.Len(t, results[1].Errors, 1)
	assert.Equal(t, "glob", results[2].Mode)
	assert.Empty(t, results[2].Paths)
}

func TestJSONRendererEmptyLists(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{Format: ui.FormatJSON, Out: &out})
	require.NoError(t, r.Begin("nothing*", types.ModeGlob))
	require.NoError(t, r.Flush())

	assert.Contains(t, out.String(), `"paths": []`)
	assert.Contains(t, out.String(), `"errors": []`)
}

func TestJSONRendererNoPatterns(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{Format: ui.FormatJSON, Out: &out})
	require.NoError(t, r.Flush())
	assert.Equal(t, "[]\n", out.String())
}

func TestYAMLRenderer(t *testing.T) {
	var out bytes.Buffer
	r := New(Options{Format: ui.FormatYAML, Out: &out})
	feed(t, r)

	var results []PatternResult
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, []string{"docs", "docs/a.md"}, results[0].Paths)
	assert.Equal(t, "directory", results[0].Mode)
	assert.Contains(t, out.String(), "pattern: docs")
}
