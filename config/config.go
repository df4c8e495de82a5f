package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"aidanwoods.dev/go-paseto"
	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Security    SecurityConfig
	Uploads     UploadConfig
	Webhook     WebhookConfig
	Shopify     ShopifyConfig
	SMTP        SMTPConfig
	Environment string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port int
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SecurityConfig struct {
	// PASETO key types
	PasetoPrivateKey paseto.V4AsymmetricSecretKey
	PasetoPublicKey  paseto.V4AsymmetricPublicKey

	// Raw decoded bytes for compatibility
	PasetoPrivateKeyBytes []byte
	PasetoPublicKeyBytes  []byte

	// Bcrypt hash of the admin dashboard password
	AdminPasswordHash string
}

type UploadConfig struct {
	Dir         string
	MaxFileSize int64
}

type WebhookConfig struct {
	// URL is the external processing endpoint notified after each upload.
	// Dispatch is disabled when empty.
	URL string
	// Secret signs webhook payloads. Required when URL is set.
	Secret string
	// AlertEmail receives a notification when delivery exhausts all
	// retries. Alerts are skipped when empty.
	AlertEmail string
}

type ShopifyConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "fitportal")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	// Upload defaults
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_FILE_SIZE", 10<<20)

	// Shopify defaults
	v.SetDefault("SHOPIFY_API_VERSION", "2024-10")

	// SMTP defaults
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "FitPortal")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Get base64 encoded keys
	privateKeyBase64 := v.GetString("PASETO_PRIVATE_KEY")
	publicKeyBase64 := v.GetString("PASETO_PUBLIC_KEY")

	// Validate required configuration
	if privateKeyBase64 == "" {
		return nil, fmt.Errorf("PASETO_PRIVATE_KEY is required")
	}
	if publicKeyBase64 == "" {
		return nil, fmt.Errorf("PASETO_PUBLIC_KEY is required")
	}

	// Decode base64 keys
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("error decoding PASETO_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("error decoding PASETO_PUBLIC_KEY: %w", err)
	}

	// Convert bytes to paseto key types
	privateKey, err := paseto.NewV4AsymmetricSecretKeyFromBytes(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("error creating PASETO private key: %w", err)
	}

	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromBytes(publicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("error creating PASETO public key: %w", err)
	}

	adminPasswordHash := v.GetString("ADMIN_PASSWORD_HASH")
	if adminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	webhookURL := v.GetString("WEBHOOK_URL")
	webhookSecret := v.GetString("WEBHOOK_SECRET")
	if webhookURL != "" && webhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET is required when WEBHOOK_URL is set")
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Security: SecurityConfig{
			PasetoPrivateKey:      privateKey,
			PasetoPublicKey:       publicKey,
			PasetoPrivateKeyBytes: privateKeyBytes,
			PasetoPublicKeyBytes:  publicKeyBytes,
			AdminPasswordHash:     adminPasswordHash,
		},
		Uploads: UploadConfig{
			Dir:         v.GetString("UPLOAD_DIR"),
			MaxFileSize: v.GetInt64("UPLOAD_MAX_FILE_SIZE"),
		},
		Webhook: WebhookConfig{
			URL:        webhookURL,
			Secret:     webhookSecret,
			AlertEmail: v.GetString("WEBHOOK_ALERT_EMAIL"),
		},
		Shopify: ShopifyConfig{
			ShopDomain:  v.GetString("SHOPIFY_SHOP_DOMAIN"),
			AccessToken: v.GetString("SHOPIFY_ACCESS_TOKEN"),
			APIVersion:  v.GetString("SHOPIFY_API_VERSION"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	return config, nil
}

// ConnectionString builds the postgres DSN.
func (c DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
