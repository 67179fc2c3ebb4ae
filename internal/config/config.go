package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvOr("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnv("PORT"),
		StoreBackend:  getEnvOr("STORE_BACKEND", "sqlite"),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getEnvOr("SHEETS_CREDENTIALS_FILE", ""),
			SpreadsheetID:   getEnvOr("SHEETS_SPREADSHEET_ID", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}

	if cfg.StoreBackend == "sheets" && (cfg.Sheets.CredentialsFile == "" || cfg.Sheets.SpreadsheetID == "") {
		log.Fatalf("STORE_BACKEND=sheets requires SHEETS_CREDENTIALS_FILE and SHEETS_SPREADSHEET_ID")
	}

	return cfg
}
