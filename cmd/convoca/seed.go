package main

import (
	"os"

	"convoca/pkg/config"
	"convoca/pkg/logger"
	"convoca/pkg/sanitizer"

	"gopkg.in/yaml.v3"
)

// defaultRows mimic a dirty import: stray whitespace, mixed case, accents,
// a duplicate identity and one row without a usable email.
var defaultRows = []sanitizer.Row{
	{"email": "  ANA@mail.com ", "name": "Ana"},
	{"email": "luis@mail.COM", "name": "Luis"},
	{"email": "maria@mail.com", "name": "María"},
	{"email": "maria@mail.com", "name": "Maria"},
	{"email": "invalido", "name": "X"},
}

// loadSeedRows reads raw attendee rows from the configured YAML fixture,
// falling back to the built-in sample when unset or unreadable.
func loadSeedRows(cfg *config.Config, log *logger.Logger) []sanitizer.Row {
	if cfg.SeedFile == "" {
		return defaultRows
	}

	data, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Warn("Failed to read seed file, using built-in rows",
			"path", cfg.SeedFile,
			"error", err,
		)
		return defaultRows
	}

	var rows []sanitizer.Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		log.Warn("Failed to parse seed file, using built-in rows",
			"path", cfg.SeedFile,
			"error", err,
		)
		return defaultRows
	}
	return rows
}
