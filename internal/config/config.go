package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Storage  StorageConfig
	DB       DBConfig
	Log      LogConfig
	Promo    PromoConfig
	Contact  ContactConfig
	SendGrid SendGridConfig
	Twilio   TwilioConfig
	S3       S3Config
	Seed     SeedConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port             string `envconfig:"SERVER_PORT" default:"3000"`
	ShutdownTimeout  int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30"` // seconds
	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	BodyLimitMB      int    `envconfig:"BODY_LIMIT_MB" default:"6"`
}

// AdminConfig holds the shared secret guarding every content-mutating route.
type AdminConfig struct {
	Secret string `envconfig:"ADMIN_SECRET" required:"true"`
}

// StorageConfig selects the storage adapter.
type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

// DBConfig holds database-related configuration.
type DBConfig struct {
	URL          string `envconfig:"DATABASE_URL"`
	MaxConns     int    `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns     int    `envconfig:"DB_MIN_CONNS" default:"2"`
	ConnectRetry int    `envconfig:"DB_CONNECT_RETRIES" default:"5"`
}

// DSN returns the PostgreSQL connection string with pool sizing applied.
// Pool parameters already present in DATABASE_URL win over DB_MAX_CONNS / DB_MIN_CONNS.
func (c DBConfig) DSN() (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	q := u.Query()
	if q.Get("pool_max_conns") == "" && c.MaxConns > 0 {
		q.Set("pool_max_conns", strconv.Itoa(c.MaxConns))
	}
	if q.Get("pool_min_conns") == "" && c.MinConns > 0 {
		q.Set("pool_min_conns", strconv.Itoa(c.MinConns))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Pretty bool   `envconfig:"LOG_PRETTY" default:"false"`
}

// PromoConfig controls how calendar months are derived for promo slots.
type PromoConfig struct {
	TimeZone string `envconfig:"PROMO_TIMEZONE" default:"UTC"`
}

// Location resolves the configured promo time zone.
func (c PromoConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// ContactConfig holds contact-form relay settings shared by every notifier.
type ContactConfig struct {
	NotifyTimeout time.Duration `envconfig:"CONTACT_NOTIFY_TIMEOUT" default:"10s"`
}

// SendGridConfig enables e-mail relay of contact submissions when APIKey is set.
type SendGridConfig struct {
	APIKey    string `envconfig:"SENDGRID_API_KEY"`
	FromEmail string `envconfig:"CONTACT_EMAIL_FROM" default:"no-reply@optisolvelabs.com"`
	FromName  string `envconfig:"CONTACT_EMAIL_FROM_NAME" default:"OptiSolve Labs"`
	ToEmail   string `envconfig:"CONTACT_EMAIL_TO"`
}

// Enabled reports whether enough settings are present to send mail.
func (c SendGridConfig) Enabled() bool {
	return c.APIKey != "" && c.ToEmail != ""
}

// TwilioConfig enables WhatsApp alerts for contact submissions.
type TwilioConfig struct {
	AccountSID   string `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken    string `envconfig:"TWILIO_AUTH_TOKEN"`
	WhatsAppFrom string `envconfig:"TWILIO_WHATSAPP_FROM"`
	WhatsAppTo   string `envconfig:"TWILIO_WHATSAPP_TO"`
}

// Enabled reports whether enough settings are present to send WhatsApp messages.
func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.WhatsAppFrom != "" && c.WhatsAppTo != ""
}

// S3Config enables admin image uploads when Bucket is set.
type S3Config struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	PublicBaseURL   string `envconfig:"S3_PUBLIC_BASE_URL"`
}

// Enabled reports whether image uploads are configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// SeedConfig holds the optional admin account created by cmd/seed.
type SeedConfig struct {
	AdminUsername string `envconfig:"SEED_ADMIN_USERNAME"`
	AdminPassword string `envconfig:"SEED_ADMIN_PASSWORD"`
}

// HasAdmin reports whether both admin credentials are set.
func (c SeedConfig) HasAdmin() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// Load reads an optional .env file, then parses environment variables into the Config struct.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements envconfig cannot express.
func (c *Config) Validate() error {
	if c.Admin.Secret == "" {
		return errors.New("ADMIN_SECRET is required")
	}
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.DB.URL == "" {
			return errors.New("DATABASE_URL is required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if _, err := c.Promo.Location(); err != nil {
		return fmt.Errorf("invalid PROMO_TIMEZONE: %w", err)
	}
	return nil
}
