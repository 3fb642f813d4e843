package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port            string
	DBName          string
	MigrationsDir   string
	Turso           TursoConfig
	NotifierBackend string
	Telegram        TelegramConfig
	Slack           SlackConfig
	MatchCheck      MatchCheckConfig
	OpenDota        OpenDotaConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type TelegramConfig struct {
	BotToken string
}

type SlackConfig struct {
	Token string
}

// MatchCheckConfig controls the background match checker.
type MatchCheckConfig struct {
	Interval time.Duration
	Enabled  bool
}

type OpenDotaConfig struct {
	DefaultPlayerID int64
}
