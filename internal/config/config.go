package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Payroll  PayrollConfig
}

type AppConfig struct {
	Env string
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxRetries  int
	AutoMigrate bool
}

// RedisConfig is optional; an empty Addr disables idempotency keys.
type RedisConfig struct {
	Addr       string
	MaxRetries int
}

type JWTConfig struct {
	Secret string
}

type PayrollConfig struct {
	EPFEmployeeRate   decimal.Decimal
	EPFEmployerRate   decimal.Decimal
	ETFRate           decimal.Decimal
	NegativeNetPolicy string
	CurrencyLabel     string
	SchoolName        string
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "school_payroll"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Payroll: PayrollConfig{
			NegativeNetPolicy: strings.ToLower(getEnv("NEGATIVE_NET_POLICY", "reject")),
			CurrencyLabel:     getEnv("CURRENCY_LABEL", "LKR"),
			SchoolName:        getEnv("SCHOOL_NAME", "School Payroll"),
		},
	}

	var err error
	cfg.Server, err = loadServer()
	if err != nil {
		return nil, err
	}

	if cfg.Database.MaxRetries, err = getInt("DB_MAX_RETRIES", 5); err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate, err = getBool("DB_AUTO_MIGRATE", true); err != nil {
		return nil, err
	}
	if cfg.Redis.MaxRetries, err = getInt("REDIS_MAX_RETRIES", 5); err != nil {
		return nil, err
	}

	if cfg.Payroll.EPFEmployeeRate, err = getDecimal("EPF_EMPLOYEE_RATE", "0.08"); err != nil {
		return nil, err
	}
	if cfg.Payroll.EPFEmployerRate, err = getDecimal("EPF_EMPLOYER_RATE", "0.12"); err != nil {
		return nil, err
	}
	if cfg.Payroll.ETFRate, err = getDecimal("ETF_RATE", "0.03"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Payroll.NegativeNetPolicy {
	case "reject", "flag":
	default:
		return fmt.Errorf("invalid NEGATIVE_NET_POLICY %q, expected reject or flag", c.Payroll.NegativeNetPolicy)
	}
	return nil
}

func loadServer() (ServerConfig, error) {
	read, err := getDuration("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}
	write, err := getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}
	idle, err := getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		Port:         getEnv("PORT", "3000"),
		ReadTimeout:  read,
		WriteTimeout: write,
		IdleTimeout:  idle,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDecimal(key, defaultValue string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
