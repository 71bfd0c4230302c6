package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// Note: account credentials live in the secret file, not env - see secret.go
type Config struct {
	Port                 string `envconfig:"PORT" default:"8080"`
	SecretFilePath       string `envconfig:"SECRET_FILE_PATH" default:"secret/secret.json"`
	EdgeXBaseURL         string `envconfig:"EDGEX_BASE_URL" default:"https://pro.edgex.exchange"`
	RequestTimeoutSec    int    `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"15"`
	MaxRetries           int    `envconfig:"MAX_RETRIES" default:"3"`
	RetryBaseWaitSeconds int    `envconfig:"RETRY_BASE_WAIT_SECONDS" default:"1"`
	RetryMaxWaitSeconds  int    `envconfig:"RETRY_MAX_WAIT_SECONDS" default:"5"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSecretFilePath returns path to secret.json from configuration
func GetSecretFilePath() string {
	return Get().SecretFilePath
}

// GetEdgeXBaseURL returns the EdgeX API base URL from configuration
func GetEdgeXBaseURL() string {
	return Get().EdgeXBaseURL
}

// GetRequestTimeout returns the HTTP request timeout from configuration
func GetRequestTimeout() time.Duration {
	return time.Duration(Get().RequestTimeoutSec) * time.Second
}

// GetMaxRetries returns how many times a failed request is retried
func GetMaxRetries() int {
	return Get().MaxRetries
}

// GetRetryBaseWait returns the base wait between retries
func GetRetryBaseWait() time.Duration {
	return time.Duration(Get().RetryBaseWaitSeconds) * time.Second
}

// GetRetryMaxWait returns the wait cap between retries
func GetRetryMaxWait() time.Duration {
	return time.Duration(Get().RetryMaxWaitSeconds) * time.Second
}
