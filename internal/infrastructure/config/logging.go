package config

// LoggingConfig configures CLI logging output.
type LoggingConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=DEBUG INFO WARN ERROR"`
	Verbose bool   `mapstructure:"verbose"`
}
