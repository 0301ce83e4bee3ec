package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"MeeApp"`
	}

	Storage struct {
		Driver     string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
		SQLitePath string `envconfig:"SQLITE_PATH" default:"data/meeledger.db"`
	}

	Ledger struct {
		StartingBalance string `envconfig:"LEDGER_STARTING_BALANCE" default:"78956.64"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"./exports"`
	}

	Log struct {
		File  string `envconfig:"LOG_FILE" default:"meeledger.log"`
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := decimal.NewFromString(c.Ledger.StartingBalance); err != nil {
		return fmt.Errorf("invalid LEDGER_STARTING_BALANCE %q: %w", c.Ledger.StartingBalance, err)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// StartingBalance returns the default balance used for a fresh ledger.
func (c *Config) StartingBalance() decimal.Decimal {
	d, err := decimal.NewFromString(c.Ledger.StartingBalance)
	if err != nil {
		return decimal.Zero
	}

	return d
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Log.Level, err)
	}

	return level, nil
}
