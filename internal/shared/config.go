package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	RedisAddr  string // empty keeps sessions in memory
	RedisDB    int
	RedisPass  string
	SessionTTL time.Duration

	OpenRouterKey   string // empty uses the canned responder
	OpenRouterBase  string
	OpenRouterModel string
	RemoteTimeout   time.Duration
	RemoteRPS       int
	BreakerFailures int
	BreakerCooldown time.Duration

	OfflineTablePath string
	CallNumber       string
}

// Load reads an optional .env file, then the environment.
func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric config value")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		RedisAddr:  env("REDIS_ADDR", ""),
		RedisPass:  env("REDIS_PASSWORD", ""),
		RedisDB:    atoi("REDIS_DB", 0),
		SessionTTL: time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,

		OpenRouterKey:   env("OPENROUTER_API_KEY", ""),
		OpenRouterBase:  env("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel: env("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
		RemoteTimeout:   time.Duration(atoi("REMOTE_TIMEOUT_SECONDS", 20)) * time.Second,
		RemoteRPS:       atoi("REMOTE_RPS", 5),
		BreakerFailures: atoi("BREAKER_FAILURES", 5),
		BreakerCooldown: time.Duration(atoi("BREAKER_COOLDOWN_SECONDS", 30)) * time.Second,

		OfflineTablePath: env("OFFLINE_TABLE_PATH", ""),
		CallNumber:       env("CALL_NUMBER", "101"),
	}
	if c.OpenRouterKey == "" {
		log.Warn().Msg("OPENROUTER_API_KEY is empty, using canned replies")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
