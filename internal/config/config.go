// Package config resolves fsinspect settings from a YAML file, a .env file,
// FSINSPECT_* environment variables and command-line overrides.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fsinspect/errors"
)

// Backend names.
const (
	BackendLocal  = "local"
	BackendMemory = "memory"
	BackendS3     = "s3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	// ConfigFileName is read from the working directory when no config file
	// is named explicitly.
	ConfigFileName = "fsinspect.yaml"

	// EnvFileName is read from the working directory when no .env file is
	// named explicitly.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment variable the loader reads.
	EnvPrefix = "FSINSPECT_"
)

// S3Config holds the object-storage settings used by the s3 backend.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	UseSSL    bool   `yaml:"use_ssl"`
	Prefix    string `yaml:"prefix,omitempty"`
}

// Config is the resolved fsinspect configuration.
type Config struct {
	Backend string   `yaml:"backend"`
	Format  string   `yaml:"format"`
	WorkDir string   `yaml:"work_dir,omitempty"`
	S3      S3Config `yaml:"s3"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Backend: BackendLocal,
		Format:  FormatJSON,
		S3: S3Config{
			UseSSL: true,
		},
	}
}

// LoadOptions controls where Load reads settings from.
type LoadOptions struct {
	// ConfigFile names a YAML file. It must exist when set; when empty
	// ConfigFileName is read if present.
	ConfigFile string

	// EnvFile names a .env file. It must exist when set; when empty
	// EnvFileName is read if present.
	EnvFile string

	// LookupEnv reads process environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// Overrides run last, in order. The CLI uses them for flags the user set.
	Overrides []func(*Config)
}

// Load layers defaults, the YAML file, the .env file, the environment and
// the overrides, then validates the result.
//
// Variables already present in the environment take precedence over the
// same variable in the .env file.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if err := loadFile(cfg, opts.ConfigFile); err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}

	for _, o := range opts.Overrides {
		o(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, name string) error {
	explicit := name != ""
	if !explicit {
		name = ConfigFileName
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file"), "file", name)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file"), "file", name)
	}
	return nil
}

func readEnvFile(name string) (map[string]string, error) {
	explicit := name != ""
	if !explicit {
		name = EnvFileName
	}

	vars, err := godotenv.Read(name)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to read env file"), "file", name)
	}
	return vars, nil
}

func applyEnv(cfg *Config, env func(string) (string, bool)) error {
	strs := map[string]*string{
		"BACKEND":       &cfg.Backend,
		"FORMAT":        &cfg.Format,
		"WORKDIR":       &cfg.WorkDir,
		"S3_ENDPOINT":   &cfg.S3.Endpoint,
		"S3_BUCKET":     &cfg.S3.Bucket,
		"S3_ACCESS_KEY": &cfg.S3.AccessKey,
		"S3_SECRET_KEY": &cfg.S3.SecretKey,
		"S3_PREFIX":     &cfg.S3.Prefix,
	}
	for key, dst := range strs {
		if v, ok := env(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := env(EnvPrefix + "S3_USE_SSL"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "invalid boolean"), "variable", EnvPrefix+"S3_USE_SSL")
		}
		cfg.S3.UseSSL = b
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendMemory:
	case BackendS3:
		if c.S3.Endpoint == "" {
			return errors.WithContext(
				errors.New(errors.CodeInvalidConfig, "s3 backend requires an endpoint"), "field", "s3.endpoint")
		}
		if c.S3.Bucket == "" {
			return errors.WithContext(
				errors.New(errors.CodeInvalidConfig, "s3 backend requires a bucket"), "field", "s3.bucket")
		}
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unknown backend %q", c.Backend), "field", "backend")
	}

	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unknown output format %q", c.Format), "field", "format")
	}
	return nil
}
