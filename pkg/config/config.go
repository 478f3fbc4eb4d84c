package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultRooms reproduces the two-room setup of the training centre.
const DefaultRooms = "Room A,Room B"

type Config struct {
	Env  string
	Port int

	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	CORS         CORSConfig
	Log          LogConfig
	Enrollment   EnrollmentConfig
	PendingCache PendingCacheConfig
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret                string
	Expiration            time.Duration
	ProtectOperatorRoutes bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// EnrollmentConfig tunes the request decision workflow.
type EnrollmentConfig struct {
	Rooms        []string
	StoreTimeout time.Duration
	LockTTL      time.Duration
}

// PendingCacheConfig controls caching of the pending request listing.
type PendingCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Database = DatabaseConfig{
		URL:          v.GetString("DATABASE_URL"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:                v.GetString("JWT_SECRET"),
		Expiration:            parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		ProtectOperatorRoutes: v.GetBool("JWT_PROTECT_OPERATOR_ROUTES"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Enrollment = EnrollmentConfig{
		Rooms:        splitAndTrim(v.GetString("ENROLLMENT_ROOMS")),
		StoreTimeout: parseDuration(v.GetString("ENROLLMENT_STORE_TIMEOUT"), 5*time.Second),
		LockTTL:      parseDuration(v.GetString("ENROLLMENT_LOCK_TTL"), 10*time.Second),
	}

	cfg.PendingCache = PendingCacheConfig{
		Enabled: v.GetBool("PENDING_CACHE_ENABLED"),
		TTL:     parseDuration(v.GetString("PENDING_CACHE_TTL"), time.Minute),
	}

	return cfg, nil
}

// Validate reports configuration the process cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Port == 0 {
		return errors.New("PORT is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if len(c.Enrollment.Rooms) == 0 {
		return errors.New("ENROLLMENT_ROOMS must list at least one room")
	}
	if c.PendingCache.Enabled && !c.Redis.Enabled {
		return errors.New("PENDING_CACHE_ENABLED requires REDIS_ENABLED")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_PROTECT_OPERATOR_ROUTES", false)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENROLLMENT_ROOMS", DefaultRooms)
	v.SetDefault("ENROLLMENT_STORE_TIMEOUT", "5s")
	v.SetDefault("ENROLLMENT_LOCK_TTL", "10s")

	v.SetDefault("PENDING_CACHE_ENABLED", false)
	v.SetDefault("PENDING_CACHE_TTL", "1m")
}

// viper reports a missing explicit config file as a plain fs error rather than
// ConfigFileNotFoundError.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
