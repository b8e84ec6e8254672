package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (event defaults, list prices, etc.)
// A .env file in the working directory is loaded first; real environment
// variables always win over it.
// -----------------------------------------------------------------------------

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

type Config struct {
	Server   ServerConfig
	Event    EventConfig
	Discount DiscountConfig
	Pricing  PricingConfig
	Store    StoreConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Report   ReportConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type EventConfig struct {
	Name     string `envconfig:"EVENT_NAME" default:"Racing Car Event"`
	Location string `envconfig:"EVENT_LOCATION" default:"UAE"`
	Date     string `envconfig:"EVENT_DATE" default:"05/09/2025"`
	Capacity int    `envconfig:"EVENT_CAPACITY" default:"300"`
}

type DiscountConfig struct {
	Percentage float64 `envconfig:"DISCOUNT_PERCENTAGE" default:"10"`
	Active     bool    `envconfig:"DISCOUNT_ACTIVE" default:"true"`
}

type PricingConfig struct {
	SingleRace       float64 `envconfig:"PRICE_SINGLE_RACE" default:"100"`
	WeekendPackage   float64 `envconfig:"PRICE_WEEKEND_PACKAGE" default:"200"`
	SeasonMembership float64 `envconfig:"PRICE_SEASON_MEMBERSHIP" default:"1000"`
}

type StoreConfig struct {
	Driver         string `envconfig:"STORE_DRIVER" default:"file"`
	FilePath       string `envconfig:"STORE_FILE_PATH" default:"customers.gob"`
	ResetOnStart   bool   `envconfig:"STORE_RESET_ON_START" default:"false"`
	RestoreOnStart bool   `envconfig:"STORE_RESTORE_ON_START" default:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"ticket_desk"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"ticket_desk"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Dubai"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Key      string `envconfig:"REDIS_KEY" default:"ticket-desk:customers"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Desk-Operator"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Dubai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"14400"` // 4*60*60
}

// ReportConfig controls the periodic sales report. Zero disables it.
type ReportConfig struct {
	Interval time.Duration `envconfig:"REPORT_INTERVAL" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	if c.Discount.Percentage < 0 || c.Discount.Percentage > 100 {
		return fmt.Errorf("DISCOUNT_PERCENTAGE must be between 0 and 100, got %g", c.Discount.Percentage)
	}
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverPostgres, StoreDriverRedis:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Report.Interval < 0 {
		return fmt.Errorf("REPORT_INTERVAL cannot be negative")
	}
	return nil
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Event: EventConfig{
			Name:     "Racing Car Event",
			Location: "UAE",
			Date:     "05/09/2025",
			Capacity: 300,
		},
		Discount: DiscountConfig{
			Percentage: 10,
			Active:     true,
		},
		Pricing: PricingConfig{
			SingleRace:       100,
			WeekendPackage:   200,
			SeasonMembership: 1000,
		},
		Store: StoreConfig{
			Driver:   StoreDriverFile,
			FilePath: "customers.gob",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Dubai",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
			Key:  "ticket-desk:test:customers",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Desk-Operator"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Dubai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 14400,
		},
	}
}
