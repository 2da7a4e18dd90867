// Package config provides configuration management for the Tradecast
// analysis service.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Upload   UploadConfig   `mapstructure:"upload" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Port                   int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
	RateLimitPerSecond     float64  `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	RateLimitBurst         int      `mapstructure:"rate_limit_burst" validate:"required,gt=0"`
	ReadTimeoutSeconds     int      `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds    int      `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// AnalysisConfig represents analysis engine limits
type AnalysisConfig struct {
	MaxEnsembleElements int  `mapstructure:"max_ensemble_elements" validate:"required,gt=0"`
	TimeoutSeconds      int  `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	CacheEnabled        bool `mapstructure:"cache_enabled"`
	CacheTTLSeconds     int  `mapstructure:"cache_ttl_seconds" validate:"omitempty,gt=0"`
}

// UploadConfig represents CSV upload limits
type UploadConfig struct {
	MaxFileSizeMB int `mapstructure:"max_file_size_mb" validate:"required,gt=0"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// AnalysisTimeout returns the boundary timeout for one analysis request
func (c *Config) AnalysisTimeout() time.Duration {
	return time.Duration(c.Analysis.TimeoutSeconds) * time.Second
}

// CacheTTL returns the result cache time-to-live
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Analysis.CacheTTLSeconds) * time.Second
}

// MaxUploadBytes returns the upload size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxFileSizeMB) << 20
}
