package config

import "time"

// APIConfig configures the game backend client.
type APIConfig struct {
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	Token       string        `mapstructure:"token"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries  int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	BackoffBase time.Duration `mapstructure:"backoff_base" validate:"gt=0"`
}
