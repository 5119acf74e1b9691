package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8374", cfg.Port)
	assert.Equal(t, StoreFile, cfg.StoreBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stdout", cfg.TracingExport)
	assert.InDelta(t, 1.0, cfg.SamplerRatio, 0.0001)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid file backend", Config{Port: "8374", StoreBackend: StoreFile, DataDir: "./data"}, false},
		{"valid memory backend", Config{Port: "8374", StoreBackend: StoreMemory}, false},
		{"valid redis backend", Config{Port: "8374", StoreBackend: StoreRedis, RedisURL: "localhost:6379"}, false},
		{"missing port", Config{StoreBackend: StoreMemory}, true},
		{"unknown backend", Config{Port: "8374", StoreBackend: "cassandra"}, true},
		{"file backend without data dir", Config{Port: "8374", StoreBackend: StoreFile}, true},
		{"redis backend without url", Config{Port: "8374", StoreBackend: StoreRedis}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
