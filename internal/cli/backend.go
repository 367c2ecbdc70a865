package cli

import (
	"github.com/jmgilman/go/fsinspect/errors"
	"github.com/jmgilman/go/fsinspect/fs/billy"
	"github.com/jmgilman/go/fsinspect/fs/core"
	"github.com/jmgilman/go/fsinspect/fs/minio"
	"github.com/jmgilman/go/fsinspect/internal/config"
)

// openBackend creates the provider named by cfg.Backend.
func openBackend(cfg *config.Config) (core.FS, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return billy.NewLocal(), nil
	case config.BackendMemory:
		return billy.NewMemory(), nil
	case config.BackendS3:
		fsys, err := minio.NewMinIO(minio.Config{
			Endpoint:  cfg.S3.Endpoint,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
			Prefix:    cfg.S3.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return fsys, nil
	default:
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unknown backend %q", cfg.Backend), "field", "backend")
	}
}
