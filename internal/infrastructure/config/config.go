package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
)

type DynamoDB struct {
	Region          string `env:"AWS_REGION"            envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"     envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`

	ProposalsTable     string `env:"PROPOSALS_TABLE"      envDefault:"proposals"`
	OrdersTable        string `env:"ORDERS_TABLE"         envDefault:"orders"`
	ProjectBriefsTable string `env:"PROJECT_BRIEFS_TABLE" envDefault:"project_briefs"`
	ProjectsTable      string `env:"PROJECTS_TABLE"       envDefault:"projects"`
	LeadsTable         string `env:"LEADS_TABLE"          envDefault:"leads"`
}

type Payments struct {
	Provider string `env:"PAYMENT_PROVIDER"     envDefault:"stripe"`
	Mock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `env:"STRIPE_CURRENCY" envDefault:"usd"`

	MercadoPagoAccessToken   string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoWebhookSecret string `env:"MERCADOPAGO_WEBHOOK_SECRET"`
}

type Billing struct {
	URL     string        `env:"BILLING_SERVICE_URL"`
	Token   string        `env:"BILLING_SERVICE_TOKEN"`
	Timeout time.Duration `env:"BILLING_SERVICE_TIMEOUT" envDefault:"10s"`
}

type Email struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"     envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPTLS      bool   `env:"SMTP_TLS"      envDefault:"true"`
	From         string `env:"EMAIL_FROM"    envDefault:"hello@example.com"`
	AdminEmail   string `env:"ADMIN_EMAIL"`
	TeamName     string `env:"TEAM_NAME"     envDefault:"The Team"`
	BookingURL   string `env:"KICKOFF_BOOKING_URL"`
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	DedupTTL time.Duration `env:"WEBHOOK_DEDUP_TTL" envDefault:"72h"`
}

type Telemetry struct {
	Enabled      bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"commerce-engine"`
}

// Config is the whole process configuration, read once at startup.
type Config struct {
	Port          int    `env:"PORT"           envDefault:"8080"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	AppBaseURL    string `env:"APP_BASE_URL"   envDefault:"http://localhost:8080"`
	CatalogFile   string `env:"CATALOG_FILE"`
	LeadsFile     string `env:"LEADS_FILE"`

	DynamoDB  DynamoDB
	Payments  Payments
	Billing   Billing
	Email     Email
	Redis     Redis
	Telemetry Telemetry
}

// Load parses the environment into Config and normalizes enum-like values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	cfg.Payments.Provider = strings.ToLower(strings.TrimSpace(cfg.Payments.Provider))
	switch cfg.Payments.Provider {
	case ProviderStripe, ProviderMercadoPago:
	default:
		return Config{}, fmt.Errorf("unsupported PAYMENT_PROVIDER %q", cfg.Payments.Provider)
	}

	cfg.AppBaseURL = strings.TrimRight(cfg.AppBaseURL, "/")
	return cfg, nil
}
