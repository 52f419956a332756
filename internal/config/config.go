package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string

	JWTSecret string
	// Register/login issue access tokens with AccessTokenTTL; the refresh
	// endpoint re-issues with RefreshedAccessTTL. The asymmetry is inherited
	// from the system this replaces.
	AccessTokenTTL     time.Duration
	RefreshedAccessTTL time.Duration
	RefreshTokenTTL    time.Duration

	OTPTTL time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Accounts     string
	Inventory    string
	Products     string
	Categories   string
	Orders       string
	OrderDetails string
	Payments     string
	Permissions  string
	Roles        string
	Shipments    string
	Suppliers    string
	Transactions string
	Users        string
	Attachments  string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Accounts:     getEnv("DYNAMO_TABLE_ACCOUNTS", "accounts"),
			Inventory:    getEnv("DYNAMO_TABLE_INVENTORY", "inventory"),
			Products:     getEnv("DYNAMO_TABLE_PRODUCTS", "products"),
			Categories:   getEnv("DYNAMO_TABLE_CATEGORIES", "categories"),
			Orders:       getEnv("DYNAMO_TABLE_ORDERS", "orders"),
			OrderDetails: getEnv("DYNAMO_TABLE_ORDER_DETAILS", "order_details"),
			Payments:     getEnv("DYNAMO_TABLE_PAYMENTS", "payments"),
			Permissions:  getEnv("DYNAMO_TABLE_PERMISSIONS", "permissions"),
			Roles:        getEnv("DYNAMO_TABLE_ROLES", "roles"),
			Shipments:    getEnv("DYNAMO_TABLE_SHIPMENTS", "shipments"),
			Suppliers:    getEnv("DYNAMO_TABLE_SUPPLIERS", "suppliers"),
			Transactions: getEnv("DYNAMO_TABLE_TRANSACTIONS", "transactions"),
			Users:        getEnv("DYNAMO_TABLE_USERS", "users"),
			Attachments:  getEnv("DYNAMO_TABLE_ATTACHMENTS", "attachments"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "inventory-api-attachments"),

		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenTTL:     getEnvDuration("ACCESS_TOKEN_TTL", 10*time.Minute),
		RefreshedAccessTTL: getEnvDuration("REFRESHED_ACCESS_TOKEN_TTL", 5*time.Minute),
		RefreshTokenTTL:    getEnvDuration("REFRESH_TOKEN_TTL", 24*time.Hour),

		OTPTTL: getEnvDuration("OTP_TTL", 5*time.Minute),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
