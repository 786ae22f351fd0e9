package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "[errors]")
	assert.Contains(t, content, `# format = "auto"`)
	assert.Contains(t, content, `# policy = "report"`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}

func TestMarshal(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Format: "json", Null: true},
		Errors: ErrorsConfig{Policy: PolicyAbort},
	}

	out, err := Marshal(cfg)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "[output]")
	assert.Contains(t, text, "format = 'json'")
	assert.Contains(t, text, "null = true")
	assert.Contains(t, text, "show_mode = false")
	assert.Contains(t, text, "policy = 'abort'")
}
