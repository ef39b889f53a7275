package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	setDefaults()
}

func TestDefaults(t *testing.T) {
	resetViper(t)

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "./data/reserve.db", GetString("database.path"))
	assert.Equal(t, 2, GetInt("processing.workers"))
	assert.Equal(t, 5*time.Second, GetDuration("processing.poll_interval"))
	assert.Equal(t, "gpt-4o-mini", GetString("llm.model"))
	assert.False(t, GetBool("auth.dev_auth_enabled"))
}

func TestEnvOverride(t *testing.T) {
	resetViper(t)
	t.Setenv("RESERVE_SERVER_PORT", "9090")

	viper.SetEnvPrefix("RESERVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	assert.Equal(t, 9090, GetInt("server.port"))
}

func TestValidateRejectsBadPort(t *testing.T) {
	resetViper(t)
	viper.Set("server.port", -1)

	err := validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestValidateRequiresDatabasePath(t *testing.T) {
	resetViper(t)
	viper.Set("database.path", "")

	err := validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.path")
}

func TestValidateRequiresJWKSInProduction(t *testing.T) {
	resetViper(t)
	viper.Set("environment", "production")
	viper.Set("llm.api_key", "sk-real-key")
	viper.Set("auth.jwks_url", "")

	err := validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwks_url")
}

func TestValidateCorrectsWorkerCount(t *testing.T) {
	resetViper(t)
	viper.Set("processing.workers", 0)

	require.NoError(t, validate())
	assert.Equal(t, 2, GetInt("processing.workers"))
}

func TestGetConfigUnmarshals(t *testing.T) {
	resetViper(t)
	viper.Set("server.host", "127.0.0.1")
	viper.Set("storage.bucket", "reserve-files")

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "reserve-files", cfg.Storage.Bucket)
	assert.Equal(t, 8080, cfg.Server.Port)
}
