package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, notifier endpoint), security settings
// - default: Values common across all environments (campaign timing, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Recovery RecoveryConfig
	Notifier NotifierConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Pacific/Auckland"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Pacific/Auckland"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"43200"` // 12*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// RecoveryConfig holds the campaign timing shared by every owner.
// The first-touch delay is owner-configurable; DefaultDelay applies when the owner leaves it unset.
type RecoveryConfig struct {
	BatchLimit       int           `envconfig:"RECOVERY_BATCH_LIMIT" default:"50"`
	DefaultDelay     time.Duration `envconfig:"RECOVERY_DEFAULT_DELAY" default:"60m"`
	SecondTouchAfter time.Duration `envconfig:"RECOVERY_SECOND_TOUCH_AFTER" default:"24h"`
	ThirdTouchAfter  time.Duration `envconfig:"RECOVERY_THIRD_TOUCH_AFTER" default:"48h"`
	CheckoutBaseURL  string        `envconfig:"RECOVERY_CHECKOUT_BASE_URL" default:"http://localhost:3000"`
}

type NotifierConfig struct {
	URL      string        `envconfig:"NOTIFIER_URL" required:"true"`
	APIKey   string        `envconfig:"NOTIFIER_API_KEY" required:"true"`
	Timeout  time.Duration `envconfig:"NOTIFIER_TIMEOUT" default:"10s"`
	FromName string        `envconfig:"NOTIFIER_FROM_NAME" default:""`
}

// RedisConfig is optional; an empty URL disables the send lease.
type RedisConfig struct {
	URL      string        `envconfig:"REDIS_URL" default:""`
	LeaseTTL time.Duration `envconfig:"REDIS_LEASE_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Recovery.BatchLimit <= 0 {
		return Config{}, fmt.Errorf("RECOVERY_BATCH_LIMIT must be positive, got %d", cfg.Recovery.BatchLimit)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Pacific/Auckland",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Pacific/Auckland",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 43200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Recovery: RecoveryConfig{
			BatchLimit:       50,
			DefaultDelay:     60 * time.Minute,
			SecondTouchAfter: 24 * time.Hour,
			ThirdTouchAfter:  48 * time.Hour,
			CheckoutBaseURL:  "http://localhost:3000",
		},
		Notifier: NotifierConfig{
			URL:     "http://localhost:9999/send",
			APIKey:  "test-key",
			Timeout: 2 * time.Second,
		},
		Redis: RedisConfig{
			LeaseTTL: time.Minute,
		},
	}
}
