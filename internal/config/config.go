package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URI is the MongoDB connection string, credentials included.
	URI string `mapstructure:"uri" validate:"required"`

	// Name is the database to use within the deployment.
	Name string `mapstructure:"name" validate:"required"`

	// Timeout bounds the initial connection and every store call.
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`
}
