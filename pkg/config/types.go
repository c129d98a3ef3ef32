package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Fpcalc      FpcalcConfig   `mapstructure:"fpcalc"`
	AcoustID    AcoustIDConfig `mapstructure:"acoustid"`
	Storage     StorageConfig  `mapstructure:"storage"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxUploadSize   int64         `mapstructure:"max_upload_size"`
}

// FpcalcConfig contains fingerprinting tool settings
type FpcalcConfig struct {
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AcoustIDConfig contains AcoustID API settings
type AcoustIDConfig struct {
	ClientKey string        `mapstructure:"client_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	RateLimit int           `mapstructure:"rate_limit"`
	Burst     int           `mapstructure:"burst"`
}

// StorageConfig contains storage settings
type StorageConfig struct {
	TempDir string `mapstructure:"temp_dir"`
}
