package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MODEL_PATH", "")
	t.Setenv("SCALER_PATH", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultModelPath, cfg.Artifacts.ModelPath)
	assert.Equal(t, DefaultScalerPath, cfg.Artifacts.ScalerPath)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MODEL_PATH", "/tmp/model.json")
	t.Setenv("SCALER_PATH", "/tmp/scaler.json")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/model.json", cfg.Artifacts.ModelPath)
	assert.Equal(t, "/tmp/scaler.json", cfg.Artifacts.ScalerPath)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("REQUEST_TIMEOUT", "-1s")
	_, err = Load()
	assert.Error(t, err)
}
