package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Cart         CartConfig
	Pricing      PricingConfig
	Checkout     CheckoutConfig
	FeatureFlags FeatureFlagsConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"YUMZY_APP_ENV" required:"true"`
	Port         string `envconfig:"YUMZY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"YUMZY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"YUMZY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"YUMZY_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"YUMZY_DB_DSN"`
	Driver string `envconfig:"YUMZY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"YUMZY_DB_HOST"`
	LegacyPort     int    `envconfig:"YUMZY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"YUMZY_DB_USER"`
	LegacyPassword string `envconfig:"YUMZY_DB_PASSWORD"`
	LegacyName     string `envconfig:"YUMZY_DB_NAME"`
	LegacySSLMode  string `envconfig:"YUMZY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"YUMZY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"YUMZY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"YUMZY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"YUMZY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"YUMZY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"YUMZY_REDIS_ADDR"`
	Password     string        `envconfig:"YUMZY_REDIS_PASSWORD"`
	DB           int           `envconfig:"YUMZY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"YUMZY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"YUMZY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"YUMZY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"YUMZY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"YUMZY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"YUMZY_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"YUMZY_JWT_ISSUER" required:"true"`
}

type CartConfig struct {
	// MaxTotalQuantity caps the summed quantity across all cart lines.
	MaxTotalQuantity int           `envconfig:"YUMZY_CART_MAX_TOTAL_QUANTITY" default:"5"`
	SnapshotTTL      time.Duration `envconfig:"YUMZY_CART_SNAPSHOT_TTL" default:"720h"`
}

type PricingConfig struct {
	DefaultDeliveryCharge string `envconfig:"YUMZY_PRICING_DEFAULT_DELIVERY_CHARGE" default:"20.0"`
	DefaultServiceCharge  string `envconfig:"YUMZY_PRICING_DEFAULT_SERVICE_CHARGE" default:"5.0"`
	GenericStoreID        string `envconfig:"YUMZY_PRICING_GENERIC_STORE_ID" default:"yumzy_store"`
}

type CheckoutConfig struct {
	SubmitGuardTTL time.Duration `envconfig:"YUMZY_CHECKOUT_SUBMIT_GUARD_TTL" default:"30s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"YUMZY_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"YUMZY_GCP_PROJECT_ID"`
	ApplicationCredentials string `envconfig:"YUMZY_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	OrdersTopic        string `envconfig:"YUMZY_PUBSUB_ORDERS_TOPIC" default:"yumzy-order-events"`
	OrdersSubscription string `envconfig:"YUMZY_PUBSUB_ORDERS_SUBSCRIPTION"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"YUMZY_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"YUMZY_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"YUMZY_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
