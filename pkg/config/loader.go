package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/logging"
	"github.com/arthur-debert/pkgenv/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PKGENV_"

// Keys owned by the paths package rather than the config tree
var envSkip = map[string]bool{
	paths.EnvConfigDir: true,
	paths.EnvDataDir:   true,
}

// LoadConfiguration builds the layered configuration. configFile may be
// empty or point at a missing file, in which case it is skipped. overrides
// uses dotted keys such as "activation.strict".
func LoadConfiguration(configFile string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), parserFor(configFile)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("loaded user config")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", configFile)
		}
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKeyValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcessConfig(&cfg)
	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKeyValue maps PKGENV_SECTION_SOME_KEY to section.some_key. The
// packages path is split on the platform list separator like PATH.
func envKeyValue(key, value string) (string, interface{}) {
	if envSkip[key] {
		return "", nil
	}
	name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
	section, rest, found := strings.Cut(name, "_")
	if !found || rest == "" {
		return "", nil
	}
	dotted := section + "." + rest
	if dotted == "packages.path" {
		if value == "" {
			return "", nil
		}
		return dotted, filepath.SplitList(value)
	}
	return dotted, value
}

func postProcessConfig(cfg *Config) {
	a := &cfg.Activation
	if a.Variable == "" {
		a.Variable = "PATH"
	}
	if a.BinDir == "" {
		a.BinDir = "bin"
	}
	if a.Parallel < 1 {
		a.Parallel = 1
	}
	if a.TrackingVar == "" {
		a.TrackingVar = "PKGENV_ACTIVE"
	}

	var roots []string
	for _, p := range cfg.Packages.Path {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		roots = append(roots, paths.ExpandHome(p))
	}
	cfg.Packages.Path = roots

	if cfg.Host.Platform == "" {
		cfg.Host.Platform = HostPlatform()
	}
	if cfg.Host.Arch == "" {
		cfg.Host.Arch = HostArch()
	}
}
