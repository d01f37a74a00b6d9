package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads the YAML layers from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile from four layers, later layers
// winning:
//
//	compiled-in defaults
//	{configDir}/base.yaml
//	{configDir}/{profile}.yaml
//	APP_* environment variables
//
// Environment names are matched against the keys the earlier layers defined,
// so APP_SERVER_READ_TIMEOUT lands on server.read_timeout and
// APP_EVENTS_STORE_ENABLED on events.store.enabled. Unknown names fall back
// to turning every underscore into a dot.
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	for _, layer := range []string{"base", profile} {
		path := filepath.Join(o.configDir, layer+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", layer, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

// envKeyMapper returns a koanf env transform that resolves APP_FOO_BAR_BAZ
// against known dotted keys before guessing.
func envKeyMapper(known []string) func(string, string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := byEnvName[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
