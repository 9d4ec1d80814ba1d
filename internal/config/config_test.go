package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/survivor-save-builder/internal/config"
	dnderr "github.com/KirkDiggler/survivor-save-builder/internal/errors"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, config.ReferenceSourceFile, cfg.Reference.Source)
	assert.Equal(t, ".", cfg.Export.OutputDir)
	assert.Empty(t, cfg.Redis.URL)
	assert.Zero(t, cfg.Redis.DraftTTL)
	assert.False(t, cfg.Export.Strict)
}

func TestLoadFrom_Values(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"REDIS_URL":                "redis://localhost:6379/0",
		"SAVEGEN_DRAFT_TTL":        "72h",
		"SAVEGEN_REFERENCE_SOURCE": "redis",
		"SAVEGEN_REFERENCE_FILE":   "reference.yaml",
		"SAVEGEN_OUTPUT_DIR":       "/tmp/saves",
		"SAVEGEN_STRICT":           "true",
		"SAVEGEN_QUIET":            "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 72*time.Hour, cfg.Redis.DraftTTL)
	assert.Equal(t, config.ReferenceSourceRedis, cfg.Reference.Source)
	assert.Equal(t, "reference.yaml", cfg.Reference.File)
	assert.Equal(t, "/tmp/saves", cfg.Export.OutputDir)
	assert.True(t, cfg.Export.Strict)
	assert.True(t, cfg.Export.Quiet)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		environment map[string]string
	}{
		{name: "unknown reference source", environment: map[string]string{"SAVEGEN_REFERENCE_SOURCE": "s3"}},
		{name: "redis source without url", environment: map[string]string{"SAVEGEN_REFERENCE_SOURCE": "redis"}},
		{name: "bad duration", environment: map[string]string{"SAVEGEN_DRAFT_TTL": "soon"}},
		{name: "negative duration", environment: map[string]string{"SAVEGEN_DRAFT_TTL": "-1h"}},
		{name: "bad bool", environment: map[string]string{"SAVEGEN_STRICT": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(tt.environment)
			require.Error(t, err)
			assert.True(t, dnderr.IsInvalidArgument(err))
		})
	}
}
