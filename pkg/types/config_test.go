package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "json backend valid",
			config: Config{Backend: BackendJSON, DataDir: "/tmp/stockroom"},
		},
		{
			name:   "sqlite backend valid",
			config: Config{Backend: BackendSQLite},
		},
		{
			name:    "empty backend rejected",
			config:  Config{DataDir: "/tmp/stockroom"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "redis"},
			wantErr: ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
