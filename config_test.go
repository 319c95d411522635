package traceix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("TRACEIX_API_KEY", "env-key")
	t.Setenv("TRACEIX_DISABLE_TELEMETRY", "1")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "1", cfg.DisableTelemetry)
}

func TestTelemetryDisabledSentinel(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"", false},
		{"0", false},
		{"true", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			cfg := Config{DisableTelemetry: tt.value}
			assert.Equal(t, tt.want, cfg.TelemetryDisabled())
		})
	}
}
