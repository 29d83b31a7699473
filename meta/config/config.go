package config

import (
	"fmt"
	"os"

	"github.com/OysterityAnarchy/itemmeta/meta/digest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides LogLevel when set.
const EnvLogLevel = "ITEMMETA_LOG_LEVEL"

type Config struct {
	// Sparse is the default sparse flag used when serializing.
	Sparse bool `yaml:"sparse,omitempty" json:"sparse,omitempty"`
	// Hash names the hasher folding sparse attributes (murmur64a, xxhash64).
	Hash     string `yaml:"hash,omitempty" json:"hash,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{Hash: digest.NameMurmur64A, LogLevel: "info"}
	cfg.applyEnv()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML (or JSON) configuration data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Hash: digest.NameMurmur64A, LogLevel: "info"}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Validate() error {
	if _, err := digest.Lookup(c.Hash); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Hasher returns the configured hash function.
func (c *Config) Hasher() digest.Hasher {
	h, err := digest.Lookup(c.Hash)
	if err != nil {
		return digest.Murmur64A
	}
	return h
}

// Level returns the configured log level; empty means info.
func (c *Config) Level() (zapcore.Level, error) {
	switch c.LogLevel {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", c.LogLevel)
}

// Logger builds a JSON logger writing to stderr at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
