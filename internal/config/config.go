package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/osse101/PredictionLeague_Go/internal/discord"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/eventlog"
	"github.com/osse101/PredictionLeague_Go/internal/feed"
	"github.com/osse101/PredictionLeague_Go/internal/league"
	"github.com/osse101/PredictionLeague_Go/internal/ratelimit"
	"github.com/osse101/PredictionLeague_Go/internal/scoring"
	"github.com/osse101/PredictionLeague_Go/internal/telegram"
	"github.com/osse101/PredictionLeague_Go/internal/user"
	"github.com/osse101/PredictionLeague_Go/internal/worker"
)

// Config holds the application configuration
type Config struct {
	Environment string `mapstructure:"environment" validate:"required"`

	Log       LogConfig        `mapstructure:"log"`
	Server    ServerConfig     `mapstructure:"server"`
	Database  DatabaseConfig   `mapstructure:"database"`
	Redis     RedisConfig      `mapstructure:"redis"`
	Telegram  TelegramConfig   `mapstructure:"telegram"`
	Discord   DiscordConfig    `mapstructure:"discord"`
	Kalshi    KalshiConfig     `mapstructure:"kalshi"`
	Cohort    CohortConfig     `mapstructure:"cohort"`
	Scoring   scoring.Config   `mapstructure:"scoring"`
	RateLimit ratelimit.Config `mapstructure:"ratelimit"`
	Worker    WorkerConfig     `mapstructure:"worker"`
	Cache     CacheConfig      `mapstructure:"cache"`
	League    LeagueConfig     `mapstructure:"league"`
	Event     EventConfig      `mapstructure:"event"`
}

type LogConfig struct {
	Level     string `mapstructure:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format    string `mapstructure:"format" validate:"oneof=json text"`
	Dir       string `mapstructure:"dir"`
	AddSource bool   `mapstructure:"add_source"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	APIKey          string        `mapstructure:"api_key"`
	TrustedProxies  []string      `mapstructure:"trusted_proxies" validate:"dive,ip"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	Host             string        `mapstructure:"host" validate:"required"`
	Port             string        `mapstructure:"port" validate:"required,numeric"`
	User             string        `mapstructure:"user" validate:"required"`
	Password         string        `mapstructure:"password"`
	Name             string        `mapstructure:"name" validate:"required"`
	SSLMode          string        `mapstructure:"sslmode" validate:"oneof=disable require verify-ca verify-full prefer allow"`
	MaxConns         int           `mapstructure:"max_conns" validate:"min=1"`
	QueryTimeout     time.Duration `mapstructure:"query_timeout" validate:"gt=0"`
	StatementTimeout time.Duration `mapstructure:"statement_timeout" validate:"gte=0"`
	MaxConnIdleTime  time.Duration `mapstructure:"max_conn_idle_time" validate:"gte=0"`
	MaxConnLifetime  time.Duration `mapstructure:"max_conn_lifetime" validate:"gte=0"`
}

// RedisConfig is optional; an empty URL selects the in-memory rate limiter
type RedisConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

type TelegramConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Token         string        `mapstructure:"token"`
	PollTimeout   int           `mapstructure:"poll_timeout" validate:"min=0"`
	Workers       int           `mapstructure:"workers" validate:"min=0"`
	QueueSize     int           `mapstructure:"queue_size" validate:"min=0"`
	HandleTimeout time.Duration `mapstructure:"handle_timeout" validate:"gte=0"`
}

type DiscordConfig struct {
	Token              string        `mapstructure:"token"`
	AppID              string        `mapstructure:"app_id"`
	APIURL             string        `mapstructure:"api_url" validate:"omitempty,url"`
	HealthPort         int           `mapstructure:"health_port" validate:"min=1,max=65535"`
	ForceCommandUpdate bool          `mapstructure:"force_command_update"`
	HandleTimeout      time.Duration `mapstructure:"handle_timeout" validate:"gte=0"`
}

type KalshiConfig struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	APIKeyID       string        `mapstructure:"api_key_id"`
	PrivateKey     string        `mapstructure:"private_key"`
	PrivateKeyPath string        `mapstructure:"private_key_path"`
	Timeout        time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RateLimit      float64       `mapstructure:"rate_limit" validate:"gt=0"`
	RateBurst      int           `mapstructure:"rate_burst" validate:"min=1"`
}

type CohortConfig struct {
	Size            int           `mapstructure:"size" validate:"min=1"`
	SyncBatch       int           `mapstructure:"sync_batch" validate:"min=1"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval" validate:"gte=1m"`
	SyncInterval    time.Duration `mapstructure:"sync_interval" validate:"gte=1m"`
	RefreshOnStart  bool          `mapstructure:"refresh_on_start"`
	FallbackFile    string        `mapstructure:"fallback_file"`
}

type WorkerConfig struct {
	Count     int `mapstructure:"count" validate:"min=1"`
	QueueSize int `mapstructure:"queue_size" validate:"min=1"`
}

type CacheConfig struct {
	Size int           `mapstructure:"size" validate:"min=1"`
	TTL  time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

type LeagueConfig struct {
	MaxMembers int `mapstructure:"max_members" validate:"min=0"`
}

type EventConfig struct {
	MaxRetries     int           `mapstructure:"max_retries" validate:"min=1"`
	RetryDelay     time.Duration `mapstructure:"retry_delay" validate:"gt=0"`
	MaxRetryDelay  time.Duration `mapstructure:"max_retry_delay" validate:"gt=0"`
	DeadLetterPath string        `mapstructure:"dead_letter_path"`

	LogEnabled         bool          `mapstructure:"log_enabled"`
	LogRetention       time.Duration `mapstructure:"log_retention" validate:"gte=1h"`
	LogCleanupInterval time.Duration `mapstructure:"log_cleanup_interval" validate:"gte=1m"`
}

// envAliases keeps the short variable names used by existing .env files
var envAliases = map[string]string{
	"server.port":       "PORT",
	"server.api_key":    "API_KEY",
	"log.level":         "LOG_LEVEL",
	"log.format":        "LOG_FORMAT",
	"log.dir":           "LOG_DIR",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.name":     "DB_NAME",
	"database.sslmode":  "DB_SSLMODE",
	"redis.url":         "REDIS_URL",
	"telegram.token":    "TELEGRAM_BOT_TOKEN",
	"discord.token":     "DISCORD_TOKEN",
	"discord.app_id":    "DISCORD_APP_ID",
	"discord.api_url":   "API_URL",
}

// Load reads .env, an optional YAML file named by $CONFIG_FILE and the
// environment, in increasing precedence. It does not validate.
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables may be set instead
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Kalshi.PrivateKey == "" && cfg.Kalshi.PrivateKeyPath != "" {
		pem, err := os.ReadFile(cfg.Kalshi.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read kalshi private key: %w", err)
		}
		cfg.Kalshi.PrivateKey = string(pem)
	}
	return &cfg, nil
}

// setDefaults registers a default for every key so env overrides are
// visible to Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", DefaultEnvironment)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.dir", DefaultLogDir)
	v.SetDefault("log.add_source", false)

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.api_key", "")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("database.host", DefaultDBHost)
	v.SetDefault("database.port", DefaultDBPort)
	v.SetDefault("database.user", DefaultDBUser)
	v.SetDefault("database.password", DefaultDBPassword)
	v.SetDefault("database.name", DefaultDBName)
	v.SetDefault("database.sslmode", DefaultDBSSLMode)
	v.SetDefault("database.max_conns", DefaultDBMaxConns)
	v.SetDefault("database.query_timeout", DefaultQueryTimeout)
	v.SetDefault("database.statement_timeout", DefaultStatementTimeout)
	v.SetDefault("database.max_conn_idle_time", DefaultConnIdleTime)
	v.SetDefault("database.max_conn_lifetime", DefaultConnLifetime)

	v.SetDefault("redis.url", "")

	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.poll_timeout", telegram.DefaultPollTimeout)
	v.SetDefault("telegram.workers", telegram.DefaultWorkers)
	v.SetDefault("telegram.queue_size", telegram.DefaultQueueSize)
	v.SetDefault("telegram.handle_timeout", telegram.DefaultHandleTimeout)

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.app_id", "")
	v.SetDefault("discord.api_url", DefaultDiscordAPIURL)
	v.SetDefault("discord.health_port", DefaultDiscordHealthPort)
	v.SetDefault("discord.force_command_update", false)
	v.SetDefault("discord.handle_timeout", discord.DefaultHandleTimeout)

	v.SetDefault("kalshi.base_url", feed.DefaultKalshiBaseURL)
	v.SetDefault("kalshi.api_key_id", "")
	v.SetDefault("kalshi.private_key", "")
	v.SetDefault("kalshi.private_key_path", "")
	v.SetDefault("kalshi.timeout", feed.DefaultHTTPTimeout)
	v.SetDefault("kalshi.rate_limit", feed.DefaultRateLimit)
	v.SetDefault("kalshi.rate_burst", feed.DefaultRateBurst)

	v.SetDefault("cohort.size", domain.DefaultCohortSize)
	v.SetDefault("cohort.sync_batch", DefaultSyncBatch)
	v.SetDefault("cohort.refresh_interval", DefaultCohortRefreshInterval)
	v.SetDefault("cohort.sync_interval", DefaultResolutionSyncInterval)
	v.SetDefault("cohort.refresh_on_start", true)
	v.SetDefault("cohort.fallback_file", "")

	sc := scoring.DefaultConfig()
	v.SetDefault("scoring.base_correct_points", sc.BaseCorrectPoints)
	v.SetDefault("scoring.base_wrong_points", sc.BaseWrongPoints)
	v.SetDefault("scoring.contrarian_threshold", sc.ContrarianThreshold)
	v.SetDefault("scoring.contrarian_multiplier", sc.ContrarianMultiplier)
	v.SetDefault("scoring.early_bird_window", sc.EarlyBirdWindow)
	v.SetDefault("scoring.early_bird_bonus", sc.EarlyBirdBonus)
	v.SetDefault("scoring.streak_threshold", sc.StreakThreshold)
	v.SetDefault("scoring.streak_bonus_per_correct", sc.StreakBonusPerCorrect)
	v.SetDefault("scoring.streak_page_size", sc.StreakPageSize)

	v.SetDefault("ratelimit.limit", ratelimit.DefaultLimit)
	v.SetDefault("ratelimit.window", ratelimit.DefaultWindow)

	v.SetDefault("worker.count", worker.DefaultWorkers)
	v.SetDefault("worker.queue_size", worker.DefaultQueueSize)

	v.SetDefault("cache.size", user.DefaultCacheSize)
	v.SetDefault("cache.ttl", user.DefaultCacheTTL)

	v.SetDefault("league.max_members", league.DefaultMaxMembers)

	v.SetDefault("event.max_retries", event.DefaultRetryMaxAttempts)
	v.SetDefault("event.retry_delay", event.DefaultRetryDelay)
	v.SetDefault("event.max_retry_delay", event.DefaultRetryMaxDelay)
	v.SetDefault("event.dead_letter_path", DefaultDeadLetterPath)
	v.SetDefault("event.log_enabled", true)
	v.SetDefault("event.log_retention", eventlog.DefaultRetention)
	v.SetDefault("event.log_cleanup_interval", eventlog.DefaultCleanupInterval)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     c.Database.Name,
		RawQuery: "sslmode=" + c.Database.SSLMode,
	}
	return u.String()
}

// KalshiEnabled reports whether feed credentials are configured
func (c *Config) KalshiEnabled() bool {
	return c.Kalshi.APIKeyID != "" && c.Kalshi.PrivateKey != ""
}
