package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pathglob/pkg/errors"
)

// GenerateConfigContent returns the defaults file with every value
// commented out, ready to be saved as a user config
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return out, nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
