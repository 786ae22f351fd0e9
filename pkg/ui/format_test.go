package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathglob/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{"auto format", ui.FormatAuto, "auto"},
		{"terminal format", ui.FormatTerminal, "term"},
		{"text format", ui.FormatText, "text"},
		{"json format", ui.FormatJSON, "json"},
		{"yaml format", ui.FormatYAML, "yaml"},
		{"unknown format", ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"TERMINAL", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yml", ui.FormatYAML, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormatForNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(f))
	assert.Equal(t, ui.FormatJSON, ui.FormatJSON.Resolve(f))
}

func TestDetectFormatHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}
