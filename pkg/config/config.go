package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Mail      MailConfig
	Draft     DraftConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"UF_APP_ENV" required:"true"`
	Port     string `envconfig:"UF_APP_PORT" required:"true"`
	LogLevel string `envconfig:"UF_LOG_LEVEL" default:"info"`
	SiteURL  string `envconfig:"UF_SITE_URL" default:"https://unitedformulas.com"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"UF_REDIS_URL" required:"true"`
	Address      string        `envconfig:"UF_REDIS_ADDR"`
	Password     string        `envconfig:"UF_REDIS_PASSWORD"`
	DB           int           `envconfig:"UF_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"UF_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"UF_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"UF_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"UF_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"UF_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// MailConfig drives the outbound dispatch transport. WarehouseEmail is the
// primary recipient for every dispatch kind and is deliberately not marked
// required here: its absence is reported per request as a configuration
// error rather than refusing to boot the whole storefront. An empty APIKey
// switches the dispatch service into simulated (log-only) mode.
type MailConfig struct {
	APIKey           string `envconfig:"UF_RESEND_API_KEY"`
	From             string `envconfig:"UF_MAIL_FROM" default:"United Formulas <onboarding@resend.dev>"`
	CreditFrom       string `envconfig:"UF_CREDIT_MAIL_FROM" default:"UF Credit Dept <notifications@unitedformulas.com>"`
	WarehouseEmail   string `envconfig:"UF_WAREHOUSE_EMAIL"`
	OrdersRecipient  string `envconfig:"UF_ORDERS_RECIPIENT"`
	InquiryRecipient string `envconfig:"UF_INQUIRY_RECIPIENT"`
	CreditRecipient  string `envconfig:"UF_CREDIT_RECIPIENT"`
}

// OrdersTo returns the recipient for purchase-order dispatches.
func (m MailConfig) OrdersTo() string {
	if m.OrdersRecipient != "" {
		return m.OrdersRecipient
	}
	return m.WarehouseEmail
}

// InquiryTo returns the recipient for general inquiry dispatches.
func (m MailConfig) InquiryTo() string {
	if m.InquiryRecipient != "" {
		return m.InquiryRecipient
	}
	return m.WarehouseEmail
}

// CreditTo returns the recipient for credit application dispatches.
func (m MailConfig) CreditTo() string {
	if m.CreditRecipient != "" {
		return m.CreditRecipient
	}
	return m.WarehouseEmail
}

type DraftConfig struct {
	TTL time.Duration `envconfig:"UF_DRAFT_TTL" default:"720h"`
}

type RateLimitConfig struct {
	DispatchWindow  time.Duration `envconfig:"UF_RATE_LIMIT_DISPATCH_WINDOW" default:"1m"`
	DispatchIPLimit int           `envconfig:"UF_RATE_LIMIT_DISPATCH_IP_LIMIT" default:"10"`
}
