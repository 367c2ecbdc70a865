package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fsinspect/errors"
	"github.com/jmgilman/go/fsinspect/fs/core"
	"github.com/jmgilman/go/fsinspect/internal/config"
)

func TestOpenBackend(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    core.FSType
		wantErr errors.ErrorCode
	}{
		{name: "local", cfg: config.Config{Backend: config.BackendLocal}, want: core.FSTypeLocal},
		{name: "memory", cfg: config.Config{Backend: config.BackendMemory}, want: core.FSTypeMemory},
		{
			name: "s3",
			cfg: config.Config{
				Backend: config.BackendS3,
				S3: config.S3Config{
					Endpoint:  "localhost:9000",
					Bucket:    "data",
					AccessKey: "minioadmin",
					SecretKey: "minioadmin",
				},
			},
			want: core.FSTypeRemote,
		},
		{
			name:    "s3 without bucket",
			cfg:     config.Config{Backend: config.BackendS3, S3: config.S3Config{Endpoint: "localhost:9000"}},
			wantErr: errors.CodeInvalidConfig,
		},
		{name: "unknown", cfg: config.Config{Backend: "tape"}, wantErr: errors.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, err := openBackend(&tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, fsys)
				assert.Equal(t, tt.wantErr, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, fsys.Type())
		})
	}
}
