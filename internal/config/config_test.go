package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fsinspect/errors"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.S3.UseSSL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(LoadOptions{LookupEnv: envMap(nil)})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ImplicitFilesInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(ConfigFileName, []byte("format: yaml\n"), 0o600))
	require.NoError(t, os.WriteFile(EnvFileName, []byte("FSINSPECT_BACKEND=memory\n"), 0o600))

	cfg, err := Load(LoadOptions{LookupEnv: envMap(nil)})
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, BackendMemory, cfg.Backend)
}

func TestLoad_Precedence(t *testing.T) {
	yamlFile := writeTemp(t, "fsinspect.yaml", `
backend: s3
format: yaml
work_dir: /from/yaml
s3:
  endpoint: yaml:9000
  bucket: yaml-bucket
  prefix: yaml/
`)
	envFile := writeTemp(t, "test.env", `
FSINSPECT_S3_BUCKET=dotenv-bucket
FSINSPECT_S3_ACCESS_KEY=dotenv-key
FSINSPECT_S3_ENDPOINT=dotenv:9000
`)
	env := envMap(map[string]string{
		"FSINSPECT_S3_ENDPOINT": "env:9000",
		"FSINSPECT_S3_USE_SSL":  "false",
	})

	cfg, err := Load(LoadOptions{
		ConfigFile: yamlFile,
		EnvFile:    envFile,
		LookupEnv:  env,
		Overrides: []func(*Config){
			func(c *Config) { c.Format = FormatJSON },
		},
	})
	require.NoError(t, err)

	assert.Equal(t, BackendS3, cfg.Backend, "yaml over default")
	assert.Equal(t, FormatJSON, cfg.Format, "override over yaml")
	assert.Equal(t, "/from/yaml", cfg.WorkDir)
	assert.Equal(t, "dotenv-bucket", cfg.S3.Bucket, ".env over yaml")
	assert.Equal(t, "dotenv-key", cfg.S3.AccessKey)
	assert.Equal(t, "env:9000", cfg.S3.Endpoint, "environment over .env")
	assert.False(t, cfg.S3.UseSSL)
	assert.Equal(t, "yaml/", cfg.S3.Prefix)
}

func TestLoad_EnvFileDoesNotTouchProcessEnvironment(t *testing.T) {
	envFile := writeTemp(t, "test.env", "FSINSPECT_TEST_ONLY_MARKER=1\n")

	_, err := Load(LoadOptions{
		ConfigFile: writeTemp(t, "c.yaml", "backend: memory\n"),
		EnvFile:    envFile,
		LookupEnv:  envMap(nil),
	})
	require.NoError(t, err)

	_, set := os.LookupEnv("FSINSPECT_TEST_ONLY_MARKER")
	assert.False(t, set)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts LoadOptions
	}{
		{
			name: "missing explicit config file",
			opts: LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")},
		},
		{
			name: "missing explicit env file",
			opts: LoadOptions{
				ConfigFile: writeTemp(t, "ok.yaml", "backend: memory\n"),
				EnvFile:    filepath.Join(t.TempDir(), "absent.env"),
			},
		},
		{
			name: "malformed yaml",
			opts: LoadOptions{ConfigFile: writeTemp(t, "bad.yaml", "backend: [unclosed\n")},
		},
		{
			name: "bad boolean",
			opts: LoadOptions{
				ConfigFile: writeTemp(t, "ok.yaml", "backend: memory\n"),
				EnvFile:    writeTemp(t, "empty.env", ""),
				LookupEnv:  envMap(map[string]string{"FSINSPECT_S3_USE_SSL": "maybe"}),
			},
		},
		{
			name: "validation runs after overrides",
			opts: LoadOptions{
				ConfigFile: writeTemp(t, "ok.yaml", "backend: memory\n"),
				EnvFile:    writeTemp(t, "empty.env", ""),
				Overrides:  []func(*Config){func(c *Config) { c.Backend = "ftp" }},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts.LookupEnv == nil {
				tt.opts.LookupEnv = envMap(nil)
			}
			cfg, err := Load(tt.opts)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "memory", mutate: func(c *Config) { c.Backend = BackendMemory }},
		{name: "yaml", mutate: func(c *Config) { c.Format = FormatYAML }},
		{
			name: "s3 complete",
			mutate: func(c *Config) {
				c.Backend = BackendS3
				c.S3.Endpoint = "localhost:9000"
				c.S3.Bucket = "b"
			},
		},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "nfs" }, field: "backend", wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, field: "format", wantErr: true},
		{
			name:    "s3 without endpoint",
			mutate:  func(c *Config) { c.Backend = BackendS3; c.S3.Bucket = "b" },
			field:   "s3.endpoint",
			wantErr: true,
		},
		{
			name:    "s3 without bucket",
			mutate:  func(c *Config) { c.Backend = BackendS3; c.S3.Endpoint = "e" },
			field:   "s3.bucket",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))

			var pe errors.PlatformError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Context()["field"])
		})
	}
}
