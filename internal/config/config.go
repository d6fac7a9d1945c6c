package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/spec-kit/delivery-ops/internal/repository"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Store        StoreConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Validation   ValidationConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	CORSAllowOrigins      string
}

// Id allocator backends.
const (
	AllocatorShared   = "shared"
	AllocatorPerKind  = "per_kind"
	AllocatorRedis    = "redis"
	AllocatorPostgres = "postgres"
)

// StoreConfig selects how the entity store is built.
type StoreConfig struct {
	IDAllocator    string
	IDStart        int64
	SeedSampleData bool
	RedisIDKey     string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// ValidationConfig tunes request validation.
type ValidationConfig struct {
	PhoneRegion string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	SMSSender  string
	WebhookURL string
	QueueSize  int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	allocator := strings.ToLower(getEnv("ID_ALLOCATOR", AllocatorShared))
	switch allocator {
	case AllocatorShared, AllocatorPerKind, AllocatorRedis, AllocatorPostgres:
	default:
		return nil, fmt.Errorf("invalid ID_ALLOCATOR %q", allocator)
	}

	seed := getEnvAsBool("SEED_SAMPLE_DATA", true)
	defaultStart := int64(1)
	if seed {
		defaultStart = repository.SeedFirstFreeID
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "delivery-ops-console"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			CORSAllowOrigins:      getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Store: StoreConfig{
			IDAllocator:    allocator,
			IDStart:        int64(getEnvAsInt("ID_START", int(defaultStart))),
			SeedSampleData: seed,
			RedisIDKey:     getEnv("REDIS_ID_KEY", "delivery-ops:entity_id"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Validation: ValidationConfig{
			PhoneRegion: strings.ToUpper(getEnv("VALIDATION_PHONE_REGION", "KE")),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			SMSSender:  getEnv("NOTIFY_SMS_SENDER", ""),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
			QueueSize:  getEnvAsInt("NOTIFY_QUEUE_SIZE", 256),
		},
	}

	if cfg.Store.SeedSampleData && cfg.Store.IDStart < repository.SeedFirstFreeID {
		return nil, fmt.Errorf("ID_START=%d overlaps sample data ids; use at least %d or SEED_SAMPLE_DATA=false",
			cfg.Store.IDStart, repository.SeedFirstFreeID)
	}
	if cfg.Store.IDAllocator == AllocatorPostgres && cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("ID_ALLOCATOR=postgres requires POSTGRES_DSN")
	}
	if cfg.Store.IDAllocator == AllocatorRedis && cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("ID_ALLOCATOR=redis requires REDIS_ADDR")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
