package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Reservation ReservationConfig
	Cron        CronConfig
	AMQP        AMQPConfig
	Redis       RedisConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"PORT" required:"true"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Guest-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type ReservationConfig struct {
	// Keys the guest token hash; rotating it invalidates every outstanding guest token.
	GuestTokenSecret   string        `envconfig:"GUEST_TOKEN_SECRET" required:"true"`
	CancellationWindow time.Duration `envconfig:"CANCELLATION_WINDOW" default:"24h"`
	TokenGracePeriod   time.Duration `envconfig:"TOKEN_GRACE_PERIOD" default:"24h"`
	MaxGuestsPerBook   int           `envconfig:"MAX_GUESTS_PER_RESERVATION" default:"20"`
}

type CronConfig struct {
	Secret        string `envconfig:"CRON_SECRET" required:"true"`
	RetentionDays int    `envconfig:"RETENTION_DAYS" default:"30"`
}

type AMQPConfig struct {
	URL          string        `envconfig:"AMQP_URL" default:""`
	EmailQueue   string        `envconfig:"AMQP_EMAIL_QUEUE" default:"email.outbound"`
	PollInterval time.Duration `envconfig:"NOTIFIER_POLL_INTERVAL" default:"5s"`
	BatchSize    int32         `envconfig:"NOTIFIER_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"NOTIFIER_MAX_ATTEMPTS" default:"5"`
}

type RedisConfig struct {
	Addr               string `envconfig:"REDIS_ADDR" default:""`
	Password           string `envconfig:"REDIS_PASSWORD" default:""`
	DB                 int    `envconfig:"REDIS_DB" default:"0"`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"20"`
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
	return cfg, nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8889", // Test port
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Guest-Token"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-dinner-club-tests",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Reservation: ReservationConfig{
			GuestTokenSecret:   "test-guest-token-secret",
			CancellationWindow: 24 * time.Hour,
			TokenGracePeriod:   24 * time.Hour,
			MaxGuestsPerBook:   20,
		},
		Cron: CronConfig{
			Secret:        "test-cron-secret",
			RetentionDays: 30,
		},
		AMQP: AMQPConfig{
			EmailQueue:   "email.outbound",
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  5,
		},
		Redis: RedisConfig{
			RateLimitPerMinute: 1000,
		},
	}
}
