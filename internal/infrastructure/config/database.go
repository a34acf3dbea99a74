package config

import "time"

// PoolConfig configures the connection pool (PostgreSQL only).
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"gte=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"gte=0"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}

// DatabaseConfig configures the snapshot cache store.
type DatabaseConfig struct {
	Type     string     `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	Path     string     `mapstructure:"path"`
	URL      string     `mapstructure:"url"`
	Host     string     `mapstructure:"host"`
	Port     int        `mapstructure:"port"`
	User     string     `mapstructure:"user"`
	Password string     `mapstructure:"password"`
	Name     string     `mapstructure:"name"`
	SSLMode  string     `mapstructure:"sslmode"`
	Pool     PoolConfig `mapstructure:"pool"`
}
