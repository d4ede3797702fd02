package config

const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvTopCitiesLimit = "TOP_CITIES_LIMIT"

	EnvSeedFile = "SEED_FILE"
)
