package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	StoreBackend  string // "sqlite" or "sheets"
	Slack         SlackConfig
	Turso         TursoConfig
	Sheets        SheetsConfig
	ProjectID     string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
}
