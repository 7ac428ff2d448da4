package config

import (
	"fmt"
	"strings"
	"time"

	"card-payment-service/pkg/apperror"

	"github.com/spf13/viper"
)

// Gateway API variants supported by the provider contract.
const (
	GatewayAPIDirectPayment = "DirectPayment"
	GatewayAPIWebPayment    = "WebPayment"
	GatewayAPIMassPayment   = "MassPayment"

	GatewayEnvHomologation = "homologation"
	GatewayEnvProduction   = "production"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GatewayConfig holds the payment-provider connection settings. It is resolved
// once at startup and handed to the orchestrator at construction; nothing
// re-reads ambient configuration per call.
type GatewayConfig struct {
	API             string        `mapstructure:"api"`         // DirectPayment, WebPayment, MassPayment
	Environment     string        `mapstructure:"environment"` // homologation, production
	MerchantID      string        `mapstructure:"merchant_id"`
	APIKey          string        `mapstructure:"api_key"`
	ContractNumber  string        `mapstructure:"contract_number"`
	CurrencyCode    int           `mapstructure:"currency_code"` // ISO 4217 numeric
	ReturnURL       string        `mapstructure:"return_url"`
	CancelURL       string        `mapstructure:"cancel_url"`
	NotificationURL string        `mapstructure:"notification_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// Validate checks the gateway settings eagerly. A bad API mode or incomplete
// credentials are fatal at construction time, not at first call.
func (g GatewayConfig) Validate() error {
	switch g.API {
	case GatewayAPIDirectPayment, GatewayAPIWebPayment, GatewayAPIMassPayment:
	default:
		return apperror.ErrConfiguration(fmt.Sprintf("unsupported gateway API: %q", g.API))
	}

	switch g.Environment {
	case GatewayEnvHomologation, GatewayEnvProduction:
	default:
		return apperror.ErrConfiguration(fmt.Sprintf("unsupported gateway environment: %q", g.Environment))
	}

	if g.APIKey != "" {
		if g.MerchantID == "" {
			return apperror.ErrConfiguration("gateway.merchant_id is required when gateway.api_key is set")
		}
		if g.ContractNumber == "" {
			return apperror.ErrConfiguration("gateway.contract_number is required when gateway.api_key is set")
		}
	}

	if g.CurrencyCode <= 0 {
		return apperror.ErrConfiguration("gateway.currency_code must be a positive ISO 4217 numeric code")
	}

	return nil
}

type AuthConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiry    time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer    string        `mapstructure:"jwt_issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CPS_ (Card Payment Service).
// Nested keys use underscore: CPS_DATABASE_HOST, CPS_GATEWAY_API_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "card_payment")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("gateway.api", GatewayAPIDirectPayment)
	v.SetDefault("gateway.environment", GatewayEnvHomologation)
	v.SetDefault("gateway.merchant_id", "")
	v.SetDefault("gateway.api_key", "")
	v.SetDefault("gateway.contract_number", "")
	// Fall back to Euro when no currency is configured.
	v.SetDefault("gateway.currency_code", 978)
	v.SetDefault("gateway.return_url", "")
	v.SetDefault("gateway.cancel_url", "")
	v.SetDefault("gateway.notification_url", "")
	v.SetDefault("gateway.timeout", "30s")
	v.SetDefault("auth.client_id", "")
	v.SetDefault("auth.client_secret", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiry", "24h")
	v.SetDefault("auth.jwt_issuer", "card-payment-service")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CPS_GATEWAY_MERCHANT_ID -> gateway.merchant_id
	v.SetEnvPrefix("CPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
