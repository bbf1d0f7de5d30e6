package store

import "time"

type Config struct {
	Host     string `mapstructure:"host" default:"localhost"`
	User     string `mapstructure:"user" default:"postgres"`
	Password string `mapstructure:"password" default:""`
	Name     string `mapstructure:"name" default:"folio"`
	Port     string `mapstructure:"port" default:"5432"`
	SslMode  string `mapstructure:"sslmode" default:"disable"`
	LogLevel string `mapstructure:"log_level" default:"warn"`

	MaxIdleConns    int           `mapstructure:"max_idle_conns" default:"5"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" default:"20"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" default:"30m"`

	// Tracing adds the otelgorm plugin to the connection.
	Tracing bool `mapstructure:"tracing"`
}
