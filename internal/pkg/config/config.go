package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, batch sizes, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Checkout CheckoutConfig
	Gateway  GatewayConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

// Redis backs the per-(variant, warehouse) stock mutex. When Addr is empty the
// in-process locker is used instead, which is only correct for a single node.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Kafka carries fire-and-forget lifecycle signals. When Brokers is empty the
// signals are written to the log instead.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_SIGNAL_TOPIC" default:"checkout.signals"`
}

type CheckoutConfig struct {
	MaxLockTTL       time.Duration `envconfig:"CHECKOUT_MAX_LOCK_TTL" default:"15m"`
	DefaultLockTTL   time.Duration `envconfig:"CHECKOUT_DEFAULT_LOCK_TTL" default:"10m"`
	ReservationTTL   time.Duration `envconfig:"CHECKOUT_RESERVATION_TTL" default:"30m"`
	StockMutexTTL    time.Duration `envconfig:"CHECKOUT_STOCK_MUTEX_TTL" default:"10s"`
	StockMutexWait   time.Duration `envconfig:"CHECKOUT_STOCK_MUTEX_WAIT" default:"3s"`
	SweepInterval    time.Duration `envconfig:"CHECKOUT_SWEEP_INTERVAL" default:"1m"`
	SweepBatchSize   int32         `envconfig:"CHECKOUT_SWEEP_BATCH_SIZE" default:"100"`
	LockReclaimBatch int32         `envconfig:"CHECKOUT_LOCK_RECLAIM_BATCH_SIZE" default:"50"`
}

type GatewayConfig struct {
	PaymentBaseURL   string        `envconfig:"PAYMENT_GATEWAY_URL" required:"true"`
	PricingBaseURL   string        `envconfig:"PRICING_ENGINE_URL" required:"true"`
	WarehouseBaseURL string        `envconfig:"WAREHOUSE_SELECTOR_URL" required:"true"`
	Timeout          time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
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
	Secret string `envconfig:"JWT_SECRET" required:"true"`
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
			TimeZone: "UTC",
		},
		Checkout: CheckoutConfig{
			MaxLockTTL:       15 * time.Minute,
			DefaultLockTTL:   10 * time.Minute,
			ReservationTTL:   30 * time.Minute,
			StockMutexTTL:    10 * time.Second,
			StockMutexWait:   3 * time.Second,
			SweepInterval:    time.Minute,
			SweepBatchSize:   100,
			LockReclaimBatch: 50,
		},
		Gateway: GatewayConfig{
			PaymentBaseURL:   "http://localhost:9601",
			PricingBaseURL:   "http://localhost:9602",
			WarehouseBaseURL: "http://localhost:9603",
			Timeout:          5 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
	}
}
