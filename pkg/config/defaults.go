package config

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultTopCitiesLimit = 3

	DefaultSeedFile = ""
)
