package config

import (
	"os"
	"strconv"

	"convoca/pkg/logger"
)

type Config struct {
	LogLevel  string
	LogFormat string

	// TopCitiesLimit is the default k for the top-cities ranking when the
	// caller does not supply one.
	TopCitiesLimit int

	// SeedFile is an optional YAML fixture of raw attendee rows for the
	// demo driver. Empty means use the built-in sample.
	SeedFile string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		TopCitiesLimit: getEnvNum(EnvTopCitiesLimit, DefaultTopCitiesLimit),

		SeedFile: getEnvStr(EnvSeedFile, DefaultSeedFile),
	}

	cfg.Log = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})

	return cfg
}

func getEnvStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
