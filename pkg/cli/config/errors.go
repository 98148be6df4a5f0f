package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration
var (
	ErrConfigNotFound  = goerr.New("configuration file not found")
	ErrInvalidConfig   = goerr.New("invalid configuration")
	ErrInvalidLogLevel = goerr.New("invalid log level")
	ErrInvalidFormat   = goerr.New("invalid format")
	ErrMissingAgentID  = goerr.New("agent ID is required")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	LogLevelKey   = "log_level"
	FormatKey     = "format"
)
