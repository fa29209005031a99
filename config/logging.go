package config

import (
	"fmt"
	"strings"
)

type LoggingConfig struct {
	Level  string
	Format string
	// File is optional. When set, JSON logs are also written there and
	// rotated once they reach FileMaxSizeMB.
	File           string
	FileMaxSizeMB  int
	FileMaxBackups int
}

func GetLoggingConfig() (*LoggingConfig, error) {
	level := strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unknown LOG_LEVEL %q", level)
	}
	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
	if format != "json" && format != "console" {
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", format)
	}
	maxSize, err := getEnvInt("LOG_FILE_MAX_SIZE_MB", 500)
	if err != nil {
		return nil, err
	}
	maxBackups, err := getEnvInt("LOG_FILE_MAX_BACKUPS", 5)
	if err != nil {
		return nil, err
	}
	return &LoggingConfig{
		Level:          level,
		Format:         format,
		File:           getEnvOrDefault("LOG_FILE", ""),
		FileMaxSizeMB:  maxSize,
		FileMaxBackups: maxBackups,
	}, nil
}
