// Package config handles configuration management for pathglob.
// It supports loading configuration from multiple sources including
// the embedded defaults, a TOML or YAML file, environment variables,
// and command-line flags, in that order of precedence.
package config
