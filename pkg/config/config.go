package config

import (
	"strings"

	"github.com/arthur-debert/pathglob/pkg/errors"
	"github.com/arthur-debert/pathglob/pkg/ui"
)

// Config is the effective CLI configuration
type Config struct {
	Output OutputConfig `koanf:"output" toml:"output"`
	Errors ErrorsConfig `koanf:"errors" toml:"errors"`
}

// OutputConfig controls how resolved paths are printed
type OutputConfig struct {
	Format   string `koanf:"format" toml:"format"`
	Null     bool   `koanf:"null" toml:"null"`
	ShowMode bool   `koanf:"show_mode" toml:"show_mode"`
}

// ErrorsConfig controls the reaction to per-item failures
type ErrorsConfig struct {
	Policy Policy `koanf:"policy" toml:"policy"`
}

// Policy decides what the CLI does with a failed item
type Policy string

const (
	// PolicyReport prints failures, keeps going and exits non-zero
	PolicyReport Policy = "report"

	// PolicyIgnore leaves failures out of the output
	PolicyIgnore Policy = "ignore"

	// PolicyAbort stops at the first failure
	PolicyAbort Policy = "abort"
)

// ParsePolicy parses a policy name, case-insensitively
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyReport, PolicyIgnore, PolicyAbort:
		return p, nil
	}
	return "", errors.Newf(errors.ErrConfigValid, "unknown error policy %q (want report, ignore or abort)", s).
		WithDetail("key", "errors.policy")
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("key", "output.format")
	}
	if _, err := ParsePolicy(string(c.Errors.Policy)); err != nil {
		return err
	}
	return nil
}
