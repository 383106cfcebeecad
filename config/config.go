// Package config loads the simulator configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"multiverse_net/sdk"
)

// Environment variables that override file values.
const (
	EnvOwner    = "MULTIVERSE_OWNER"
	EnvMinter   = "MULTIVERSE_MINTER"
	EnvLogLevel = "MULTIVERSE_LOG_LEVEL"
)

// maxSymbolLen bounds the token ticker, it ends up inside every balance key.
const maxSymbolLen = 32

// Config holds the identities the contracts trust plus logging settings.
type Config struct {
	// Owner administers the message, computation and channel contracts.
	Owner string `yaml:"owner"`

	// Minter is the only account allowed to mint tokens.
	Minter string `yaml:"minter"`

	Token   TokenConfig   `yaml:"token"`
	Logging LoggingConfig `yaml:"logging"`
}

type TokenConfig struct {
	// Symbol is the ticker, case-insensitive. Defaults to NIT.
	Symbol string `yaml:"symbol"`
}

type LoggingConfig struct {
	// Level is any zap level name: debug, info, warn, error.
	Level string `yaml:"level"`
	// Development switches to zap's console encoder.
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Owner:  "CONTRACT_OWNER",
		Minter: "CONTRACT_OWNER",
		Token: TokenConfig{
			Symbol: "NIT",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path on top of the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvOwner); v != "" {
		cfg.Owner = v
	}
	if v := os.Getenv(EnvMinter); v != "" {
		cfg.Minter = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Owner) == "" {
		return fmt.Errorf("owner must not be empty")
	}
	if strings.TrimSpace(c.Minter) == "" {
		return fmt.Errorf("minter must not be empty")
	}
	sym := strings.TrimSpace(c.Token.Symbol)
	if sym == "" {
		return fmt.Errorf("token symbol must not be empty")
	}
	if len(sym) > maxSymbolLen {
		return fmt.Errorf("token symbol %q longer than %d characters", sym, maxSymbolLen)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (c *Config) OwnerAddress() sdk.Address {
	return sdk.AddressFromString(c.Owner)
}

func (c *Config) MinterAddress() sdk.Address {
	return sdk.AddressFromString(c.Minter)
}

func (c *Config) Asset() sdk.Asset {
	return sdk.AssetFromString(c.Token.Symbol)
}

// CreateLogger builds the operational logger at the configured level.
func (c *Config) CreateLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	var zc zap.Config
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}
