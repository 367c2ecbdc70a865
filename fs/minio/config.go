package minio

import (
	platformerrors "github.com/jmgilman/go/fsinspect/errors"
	"github.com/minio/minio-go/v7"
)

// DefaultRenameConcurrency is the number of parallel copies used when
// renaming a directory.
const DefaultRenameConcurrency = 10

// Config holds MinIO filesystem configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g., "localhost:9000").
	Endpoint string

	// Bucket is the bucket name. Required.
	Bucket string

	// AccessKey is the access key ID for authentication.
	AccessKey string

	// SecretKey is the secret access key for authentication.
	SecretKey string

	// UseSSL enables HTTPS connections.
	UseSSL bool

	// Prefix is an optional key prefix that acts as the filesystem root.
	Prefix string

	// Client is an optional pre-configured client.
	// If set, Endpoint, AccessKey and SecretKey are ignored.
	Client *minio.Client

	// MaxRenameConcurrency limits concurrent copies during a directory
	// rename. Zero means DefaultRenameConcurrency.
	MaxRenameConcurrency int
}

// validate checks that either Client or a full set of connection fields is
// present.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "bucket is required")
	}
	if c.MaxRenameConcurrency < 0 {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "rename concurrency must not be negative")
	}
	if c.Client != nil {
		return nil
	}
	if c.Endpoint == "" {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return platformerrors.New(platformerrors.CodeInvalidConfig, "secret key is required when client is not provided")
	}
	return nil
}
