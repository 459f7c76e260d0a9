package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Journal
		Demo
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string // ":memory:" keeps the journal in-process only
	}
	Journal struct {
		RetentionDays   int
		CleanupEnabled  bool
		CleanupSchedule string // Cron format: "0 * * * *" = hourly
	}
	Demo struct {
		Seed     bool // Seed the demonstration catalog on startup
		ReadOnly bool // Block catalog writes, loans stay open
	}
)

// loadDotEnv loads variables from a .env file, if one exists. Variables already
// present in the environment take precedence.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("WARNING: could not load %s: %v", path, err)
	}
}

func NewConfig() *Config {
	loadDotEnv(DefaultDotEnvPath)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Journal defaults
	v.SetDefault("journal_retention_days", 30)
	v.SetDefault("journal_cleanup_enabled", true)
	v.SetDefault("journal_cleanup_schedule", "0 * * * *") // Hourly at :00

	v.SetDefault("demo_seed", false)
	v.SetDefault("demo_read_only", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Journal: Journal{
			RetentionDays:   v.GetInt("JOURNAL_RETENTION_DAYS"),
			CleanupEnabled:  v.GetBool("JOURNAL_CLEANUP_ENABLED"),
			CleanupSchedule: v.GetString("JOURNAL_CLEANUP_SCHEDULE"),
		},
		Demo: Demo{
			Seed:     v.GetBool("DEMO_SEED"),
			ReadOnly: v.GetBool("DEMO_READ_ONLY"),
		},
	}
}
