package config

import "fmt"

const (
	minPort = 1
	maxPort = 65535
)

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired checks that value is not empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidatePort checks that port is a usable TCP port number.
func ValidatePort(field string, port int) error {
	if port < minPort || port > maxPort {
		return &ValidationError{Field: field, Message: "must be between 1 and 65535"}
	}
	return nil
}

// ValidateLogLevel checks a log level name.
func ValidateLogLevel(field, level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return &ValidationError{Field: field, Message: "must be one of: debug, info, warn, error, fatal"}
	}
}

// ValidateLogFormat checks a log format name.
func ValidateLogFormat(field, format string) error {
	switch format {
	case "json", "console":
		return nil
	default:
		return &ValidationError{Field: field, Message: "must be one of: json, console"}
	}
}
