package config

const (
	// DefaultDatabasePath keeps the lending journal in memory.
	DefaultDatabasePath = ":memory:"

	// DefaultDotEnvPath is read before the environment, when present.
	DefaultDotEnvPath = ".env"
)
