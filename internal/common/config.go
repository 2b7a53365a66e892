package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	GeoServer GeoServerConfig
	Solr      SolrConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// GeoServerConfig holds spatial-data server configuration
type GeoServerConfig struct {
	BaseURL   string
	Workspace string
	Username  string
	Password  string
	Timeout   time.Duration
}

// SolrConfig holds search index configuration
type SolrConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		GeoServer: GeoServerConfig{
			BaseURL:   getEnv("GEOSERVER_URL", ""),
			Workspace: getEnv("GEOSERVER_WORKSPACE", "mit"),
			Username:  getEnv("GEOSERVER_USER", ""),
			Password:  getEnv("GEOSERVER_PASSWORD", ""),
			Timeout:   getEnvAsDuration("GEOSERVER_TIMEOUT", 60*time.Second),
		},
		Solr: SolrConfig{
			BaseURL: getEnv("SOLR_URL", ""),
			Timeout: getEnvAsDuration("SOLR_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.GeoServer.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "GEOSERVER_URL is required", ErrInvalidInput)
	}
	if c.GeoServer.Workspace == "" {
		return NewAppError("CONFIG_ERROR", "GEOSERVER_WORKSPACE is required", ErrInvalidInput)
	}
	if c.Solr.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "SOLR_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
