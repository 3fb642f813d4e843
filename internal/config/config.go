package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultCheckInterval = 5 * time.Minute

// Supported notifier backends.
const (
	BackendTelegram = "telegram"
	BackendSlack    = "slack"
)

// EnvKey converts a configuration key to its environment variable form: path
// separators become double underscores and the result is upper-cased, e.g.
// "CosmosDb:EndpointUri" -> "COSMOSDB__ENDPOINTURI".
func EnvKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ":", "__"))
}

// ParseInterval interprets the MatchCheck:IntervalMinutes setting as whole
// minutes. Absent or unparseable values fall back to the five minute default.
func ParseInterval(raw string) time.Duration {
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return defaultCheckInterval
	}
	return time.Duration(minutes) * time.Minute
}

// ParseEnabled interprets the MatchCheck:Enabled setting. Only the literal
// value "false" disables the checker; anything else, including garbage,
// leaves it enabled.
func ParseEnabled(raw string) bool {
	return raw != "false"
}

// Loader resolves configuration keys. A non-empty environment override
// always wins over the value from the config file.
type Loader struct {
	v *viper.Viper
}

// NewLoader reads the optional config.yaml from the working directory.
func NewLoader() *Loader {
	v := viper.NewWithOptions(viper.KeyDelimiter(":"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		log.Info("No config file found, reading from environment variables")
	}
	return &Loader{v: v}
}

// Get resolves a single configuration key with environment override.
func (l *Loader) Get(key string) string {
	if value := os.Getenv(EnvKey(key)); value != "" {
		return value
	}
	return l.v.GetString(key)
}

func (l *Loader) getRequired(key string) string {
	value := l.Get(key)
	if value == "" {
		log.Fatalf("Error: required configuration value %s is not set", key)
	}
	return value
}

func (l *Loader) getDefault(key, fallback string) string {
	if value := l.Get(key); value != "" {
		return value
	}
	return fallback
}

// Load reads configuration from the config file, .env file and environment
// variables. Missing required values are fatal.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	l := NewLoader()

	cfg := Config{
		Port:          l.getDefault("Server:Port", "8080"),
		DBName:        l.getRequired("Database:Name"),
		MigrationsDir: "./migrations",
		Turso: TursoConfig{
			PrimaryURL: l.Get("Turso:PrimaryUrl"),
			AuthToken:  l.Get("Turso:AuthToken"),
		},
		NotifierBackend: l.getDefault("Notifier:Backend", BackendTelegram),
		MatchCheck: MatchCheckConfig{
			Interval: ParseInterval(l.Get("MatchCheck:IntervalMinutes")),
			Enabled:  ParseEnabled(l.Get("MatchCheck:Enabled")),
		},
		OpenDota: OpenDotaConfig{
			DefaultPlayerID: parsePlayerID(l.Get("OpenDota:DefaultPlayerId")),
		},
	}

	switch cfg.NotifierBackend {
	case BackendTelegram:
		cfg.Telegram.BotToken = l.getRequired("Telegram:BotToken")
	case BackendSlack:
		cfg.Slack.Token = l.getRequired("Slack:Token")
	default:
		log.Fatalf("Error: unknown notifier backend %q", cfg.NotifierBackend)
	}
	return cfg
}

func parsePlayerID(raw string) int64 {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warn("Invalid OpenDota:DefaultPlayerId, ignoring", "value", raw)
		return 0
	}
	return id
}
