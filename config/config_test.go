package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DEFAULT_SIMULATION_COUNT", "")
	t.Setenv("MIN_SIMULATION_COUNT", "")
	t.Setenv("MAX_SIMULATION_COUNT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.DefaultSimulationCount)
	assert.Equal(t, 100, cfg.MinSimulationCount)
	assert.Equal(t, 1000000, cfg.MaxSimulationCount)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DEFAULT_SIMULATION_COUNT", "500")
	t.Setenv("MIN_SIMULATION_COUNT", "200")
	t.Setenv("MAX_SIMULATION_COUNT", "5000")
	t.Setenv("NATS_SERVERS", "nats://localhost:4222")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.DefaultSimulationCount)
	assert.Equal(t, 200, cfg.MinSimulationCount)
	assert.Equal(t, 5000, cfg.MaxSimulationCount)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSServers)
}

func TestLoad_MalformedNumbersKeepDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DEFAULT_SIMULATION_COUNT", "lots")
	t.Setenv("MIN_SIMULATION_COUNT", "")
	t.Setenv("MAX_SIMULATION_COUNT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.DefaultSimulationCount)
}

func TestLoad_DefaultOutsideRange(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DEFAULT_SIMULATION_COUNT", "50")
	t.Setenv("MIN_SIMULATION_COUNT", "")
	t.Setenv("MAX_SIMULATION_COUNT", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresSecretsOutsideTest(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/moneygame")
	t.Setenv("DEFAULT_SIMULATION_COUNT", "")
	t.Setenv("MIN_SIMULATION_COUNT", "")
	t.Setenv("MAX_SIMULATION_COUNT", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN is required")
}

func TestLoadForCLI_SkipsSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEFAULT_SIMULATION_COUNT", "2000")
	t.Setenv("MIN_SIMULATION_COUNT", "")
	t.Setenv("MAX_SIMULATION_COUNT", "")

	cfg, err := LoadForCLI()
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.DefaultSimulationCount)
	assert.Equal(t, "production", cfg.Environment)
}

func TestSetForTesting(t *testing.T) {
	cfg := NewTestConfig()
	cfg.DefaultSimulationCount = 1234
	SetForTesting(cfg)
	defer SetForTesting(nil)

	assert.Equal(t, 1234, Get().DefaultSimulationCount)
}
