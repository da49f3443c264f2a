package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig    `mapstructure:"server"`
	Storage      StorageConfig   `mapstructure:"storage"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// StorageConfig contains session dataset settings
type StorageConfig struct {
	// DataDir holds one SQLite file per session.
	DataDir string `mapstructure:"data_dir"`
	// WipeOnStart clears leftover session datasets at startup.
	WipeOnStart    bool `mapstructure:"wipe_on_start"`
	MaxConnections int  `mapstructure:"max_connections"`
	LogQueries     bool `mapstructure:"log_queries"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Verbose bool `mapstructure:"verbose"`
}
