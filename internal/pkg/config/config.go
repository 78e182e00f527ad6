package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty default: optional integrations (Redis, Sentry, Stripe) that degrade gracefully when unset
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Ledger    LedgerConfig
	Payment   PaymentConfig
	ImageGen  ImageGenConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
	Sentry    SentryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Public origin used to build checkout return URLs
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:5173"`
}

type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"postgres"` // postgres | memory
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Device-Fingerprint"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type LedgerConfig struct {
	FreeTierLimit int           `envconfig:"FREE_TIER_LIMIT" default:"3"`
	FreeTierWeek  time.Duration `envconfig:"FREE_TIER_WINDOW" default:"168h"`
}

type PaymentConfig struct {
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	StarterPriceID      string `envconfig:"STRIPE_PRICE_STARTER"`
	FamilyPriceID       string `envconfig:"STRIPE_PRICE_FAMILY"`
	ClassroomPriceID    string `envconfig:"STRIPE_PRICE_CLASSROOM"`
}

type ImageGenConfig struct {
	APIKey     string        `envconfig:"GEMINI_API_KEY"`
	BaseURL    string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/"`
	APIVersion string        `envconfig:"GEMINI_API_VERSION" default:"v1beta"`
	Model      string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash-image"`
	Timeout    time.Duration `envconfig:"GENERATION_TIMEOUT" default:"90s"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

type RateLimitConfig struct {
	Window        time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	GenerateLimit int           `envconfig:"RATE_LIMIT_GENERATE" default:"20"`
	CheckoutLimit int           `envconfig:"RATE_LIMIT_CHECKOUT" default:"10"`
	RedeemLimit   int           `envconfig:"RATE_LIMIT_REDEEM" default:"10"`
}

type AdminConfig struct {
	JWTSecret string `envconfig:"ADMIN_JWT_SECRET"`
}

type SentryConfig struct {
	DSN         string  `envconfig:"SENTRY_DSN"`
	Environment string  `envconfig:"APP_ENV" default:"development"`
	SampleRate  float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE" default:"0.2"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) IsMemory() bool {
	return c.Driver == "memory"
}

func (c *PaymentConfig) PriceIDs() map[string]string {
	return map[string]string{
		"starter":   c.StarterPriceID,
		"family":    c.FamilyPriceID,
		"classroom": c.ClassroomPriceID,
	}
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if !cfg.DB.IsMemory() && (cfg.DB.User == "" || cfg.DB.DBName == "") {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME are required when DB_DRIVER=%s", cfg.DB.Driver)
	}
	if cfg.Ledger.FreeTierLimit < 0 {
		return Config{}, fmt.Errorf("FREE_TIER_LIMIT must not be negative")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:      "8889", // Test port
			PublicURL: "http://localhost:5173",
		},
		DB: DBConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Ledger: LedgerConfig{
			FreeTierLimit: 3,
			FreeTierWeek:  7 * 24 * time.Hour,
		},
		Payment: PaymentConfig{
			StripeWebhookSecret: "whsec_test",
			StarterPriceID:      "price_starter",
			FamilyPriceID:       "price_family",
			ClassroomPriceID:    "price_classroom",
		},
		ImageGen: ImageGenConfig{
			Timeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Window:        time.Minute,
			GenerateLimit: 1000,
			CheckoutLimit: 1000,
			RedeemLimit:   1000,
		},
		Admin: AdminConfig{
			JWTSecret: "test-admin-secret",
		},
	}
}
