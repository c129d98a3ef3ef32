package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("SONGID")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("fpcalc.path") == "" {
		return fmt.Errorf("fpcalc path cannot be empty")
	}

	if viper.GetString("acoustid.base_url") == "" {
		return fmt.Errorf("acoustid base URL cannot be empty")
	}

	// Validate the client key isn't a placeholder value
	if err := validateClientKey(); err != nil {
		return err
	}

	// Auto-correct invalid rate limit
	if viper.GetInt("acoustid.rate_limit") <= 0 {
		viper.Set("acoustid.rate_limit", 3)
	}

	return nil
}

// validateClientKey validates that the AcoustID client key is not a
// placeholder value. The key itself is only required when a lookup actually
// runs, so an empty key is fine here.
func validateClientKey() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_CLIENT_KEY",
		"changeme",
		"CHANGEME",
	}

	clientKey := viper.GetString("acoustid.client_key")
	for _, placeholder := range placeholders {
		if clientKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid AcoustID client key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: AcoustID client key is using a placeholder value")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Fpcalc.Path == "" {
		return fmt.Errorf("fpcalc path cannot be empty")
	}

	if c.AcoustID.RateLimit <= 0 {
		c.AcoustID.RateLimit = 3
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_upload_size", 52428800)

	// Fingerprinting tool defaults
	viper.SetDefault("fpcalc.path", "fpcalc")
	viper.SetDefault("fpcalc.timeout", 30*time.Second)

	// AcoustID defaults
	viper.SetDefault("acoustid.base_url", "https://api.acoustid.org")
	viper.SetDefault("acoustid.timeout", 10*time.Second)
	viper.SetDefault("acoustid.user_agent", "songid/1.0 (+https://github.com/killallgit/songid)")
	viper.SetDefault("acoustid.rate_limit", 3)
	viper.SetDefault("acoustid.burst", 3)

	// Storage defaults
	viper.SetDefault("storage.temp_dir", os.TempDir())
}
