package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the CLI settings read from the environment.
type Env struct {
	ConfigPath string
	Preset     string
	LogLevel   string
	LogFile    string
	Minify     bool
}

// LoadEnv reads an optional .env file (or the given files) and then the
// FORMWIZARD_* variables. Variables already set in the process win over the
// file.
func LoadEnv(files ...string) Env {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return Env{
		ConfigPath: getEnvOrDefault("FORMWIZARD_CONFIG", ""),
		Preset:     getEnvOrDefault("FORMWIZARD_PRESET", "activity"),
		LogLevel:   strings.ToLower(getEnvOrDefault("FORMWIZARD_LOG_LEVEL", "info")),
		LogFile:    getEnvOrDefault("FORMWIZARD_LOG_FILE", ""),
		Minify:     getEnvBoolOrDefault("FORMWIZARD_MINIFY", false),
	}
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (e Env) SlogLevel() slog.Level {
	switch e.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
