package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

const (
	EnvDev  = "development"
	EnvProd = "production"
)

// Config stores runtime configuration for the tool.
type Config struct {
	AppEnv    string
	StatePath string
	MediaDir  string
	LogLevel  logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dataDir := strings.TrimSpace(getEnv("TEAMBALANCE_DATA_DIR", defaultDataDir()))
	if dataDir == "" {
		return Config{}, fmt.Errorf("TEAMBALANCE_DATA_DIR cannot be empty")
	}

	statePath := strings.TrimSpace(getEnv("TEAMBALANCE_STATE_PATH", filepath.Join(dataDir, "state.json")))
	if statePath == "" {
		return Config{}, fmt.Errorf("TEAMBALANCE_STATE_PATH cannot be empty")
	}

	mediaDir := strings.TrimSpace(getEnv("TEAMBALANCE_MEDIA_DIR", filepath.Join(dataDir, "media")))
	if mediaDir == "" {
		return Config{}, fmt.Errorf("TEAMBALANCE_MEDIA_DIR cannot be empty")
	}

	return Config{
		AppEnv:    appEnv,
		StatePath: statePath,
		MediaDir:  mediaDir,
		LogLevel:  parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".team-balance"
	}
	return filepath.Join(home, ".team-balance")
}

func parseAppEnv(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case EnvDev, "dev":
		return EnvDev, nil
	case EnvProd, "prod":
		return EnvProd, nil
	default:
		return "", fmt.Errorf("unknown APP_ENV: %s", value)
	}
}

func parseLogLevel(value string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
