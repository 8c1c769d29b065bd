package config

import "time"

// EnvConfigFile names an optional YAML file layered under the environment
const EnvConfigFile = "CONFIG_FILE"

// ============================================================================
// Defaults
// ============================================================================

const (
	DefaultPort            = 8080
	DefaultEnvironment     = "dev"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultShutdownTimeout = 15 * time.Second

	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBName           = "predictionleague"
	DefaultDBSSLMode        = "disable"
	DefaultDBMaxConns       = 10
	DefaultQueryTimeout     = 60 * time.Second
	DefaultStatementTimeout = 60 * time.Second
	DefaultConnIdleTime     = 5 * time.Minute
	DefaultConnLifetime     = time.Hour

	DefaultDiscordAPIURL     = "http://localhost:8080"
	DefaultDiscordHealthPort = 8082

	DefaultCohortRefreshInterval  = 6 * time.Hour
	DefaultResolutionSyncInterval = 15 * time.Minute
	DefaultSyncBatch              = 50

	DefaultDeadLetterPath = "data/event_deadletter.jsonl"
)

// Placeholder values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Warnings
const (
	WarnExampleDBPassword = "database.password is the example value; set a real password"
	WarnExampleAPIKey     = "server.api_key is the example value; generate one with: openssl rand -hex 32"
	WarnDefaultDBPassword = "database.password is the default in a production environment"
	WarnNoKalshi          = "kalshi credentials not set; cohorts will use the demo fallback markets"
	WarnNoRedis           = "redis.url not set; rate limits are per process"
)
