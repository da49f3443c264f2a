package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppliesDefaults(t *testing.T) {
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "./data/sessions", cfg.Storage.DataDir)
	assert.True(t, cfg.Storage.WipeOnStart)
	assert.True(t, cfg.RateLimiting.Enabled)
}

func TestInitIsIdempotent(t *testing.T) {
	require.NoError(t, Init())
	require.NoError(t, Init())
}

func TestValidateRejectsBadPort(t *testing.T) {
	require.NoError(t, Init())
	original := viper.GetInt("server.port")
	defer viper.Set("server.port", original)

	viper.Set("server.port", 0)
	assert.Error(t, validate())

	viper.Set("server.port", 70000)
	assert.Error(t, validate())
}

func TestValidateRejectsEmptyDataDir(t *testing.T) {
	require.NoError(t, Init())
	original := viper.GetString("storage.data_dir")
	defer viper.Set("storage.data_dir", original)

	viper.Set("storage.data_dir", "")
	assert.Error(t, validate())
}

func TestValidateCorrectsRateLimits(t *testing.T) {
	require.NoError(t, Init())
	viper.Set("rate_limiting.requests_per_second", -1)
	viper.Set("rate_limiting.burst", 0)

	require.NoError(t, validate())
	assert.Equal(t, 10, GetInt("rate_limiting.requests_per_second"))
	assert.Equal(t, 20, GetInt("rate_limiting.burst"))
}
