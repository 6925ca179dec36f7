package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	envConfigDir     = envPrefix + "CONFIG_DIR"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir overrides where base.yaml and the profile files live. It
// takes precedence over APP_CONFIG_DIR.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load merges configuration layers, later ones winning:
//
//  1. built-in defaults
//  2. {dir}/base.yaml
//  3. {dir}/{profile}.yaml
//  4. APP_* environment variables
//
// dir is WithConfigDir, else APP_CONFIG_DIR, else ./configs. Tool clients
// often spawn the stdio binary from an arbitrary working directory, so when
// the directory does not exist at all Load skips both files and runs on
// defaults plus environment. If the directory exists, both files must too.
//
// Environment keys are matched against the known key set so underscores
// inside a field name are not mistaken for nesting:
//
//	APP_SERVER_READ_TIMEOUT               -> server.read_timeout
//	APP_CLIENTS_DOCS_RETRY_MAX_ATTEMPTS   -> clients.docs.retry.max_attempts
//	APP_GOOGLE_AUTH_REFRESH_TOKEN         -> google.auth.refresh_token
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: os.Getenv(envConfigDir)}
	for _, opt := range opts {
		opt(o)
	}
	if o.configDir == "" {
		o.configDir = defaultConfigDir
	}

	k := koanf.New(".")

	// Defaults first: every known key exists afterwards, which the env
	// lookup relies on for keys the YAML leaves out.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFiles(k, o.configDir, profile); err != nil {
		return nil, err
	}

	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadFiles(k *koanf.Koanf, dir, profile string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}
	return nil
}

// envProvider maps APP_FOO_BAR_BAZ onto a known key when one matches and
// falls back to replacing every underscore with a dot.
func envProvider(known []string) koanf.Provider {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if k, ok := lookup[key]; ok {
				return k, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// validateProfile rejects names that could escape the config directory.
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
