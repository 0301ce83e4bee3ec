package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/meeledger/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "MeeApp", cfg.App.Name)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "data/meeledger.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "78956.64", cfg.StartingBalance().String())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("LEDGER_STARTING_BALANCE", "-500.25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "-500.25", cfg.StartingBalance().String())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Invalid(t *testing.T) {
	type testCase struct {
		name string
		env  map[string]string
	}

	tests := []testCase{
		{name: "UnknownDriver", env: map[string]string{"STORAGE_DRIVER": "postgres"}},
		{name: "EmptySQLitePath", env: map[string]string{"SQLITE_PATH": ""}},
		{name: "BadBalance", env: map[string]string{"LEDGER_STARTING_BALANCE": "a lot"}},
		{name: "BadLevel", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
