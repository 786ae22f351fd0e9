package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/pathglob/pkg/errors"
)

const (
	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "PATHGLOB_"

	// EnvConfigFile points at a configuration file to load
	EnvConfigFile = "PATHGLOB_CONFIG"

	appDirName = "pathglob"
)

// LoadOptions selects the sources Load reads on top of the defaults
type LoadOptions struct {
	// ConfigFile is loaded instead of the discovered one and must exist
	ConfigFile string

	// Overrides are dotted keys (e.g. "output.format") applied last,
	// usually from command-line flags
	Overrides map[string]interface{}
}

// Load builds the effective configuration: embedded defaults, then the
// config file, then PATHGLOB_* environment variables, then overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	path, required := configFilePath(opts.ConfigFile)
	if path != "" {
		if _, err := os.Stat(path); err == nil || required {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
					WithDetail("path", path)
			}
		}
	}

	// 3. Environment, PATHGLOB_OUTPUT_SHOW_MODE -> output.show_mode
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToPolicyHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// configFilePath returns the file to load and whether it must exist
func configFilePath(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if fromEnv := os.Getenv(EnvConfigFile); fromEnv != "" {
		return fromEnv, true
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(xdg.ConfigHome, appDirName, name)
		if _, err := os.Stat(path); err == nil {
			return path, false
		}
	}
	return "", false
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// stringToPolicyHookFunc normalizes and validates errors.policy while decoding
func stringToPolicyHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(Policy("")) {
			return data, nil
		}
		return ParsePolicy(data.(string))
	}
}
