package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Store      StoreConfig
	Database   DatabaseConfig
	Attendance AttendanceConfig
	Intake     IntakeConfig
	JWT        JWTConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// StoreConfig selects the ledger/roster backing store.
type StoreConfig struct {
	// Type is either "file" or "postgres".
	Type string
	// DataDir is where the file store keeps monthly partitions and report artifacts.
	DataDir string
	// RosterFile is the tabular roster source ("Employee ID,Name").
	RosterFile string
	// CredentialsFile is the admin credentials JSON file.
	CredentialsFile string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AttendanceConfig holds the time-classification policy.
type AttendanceConfig struct {
	// OfficeStart is the nominal start of the working day, "15:04" format.
	OfficeStart string
	// GracePeriod is the window after OfficeStart still classified on-time.
	GracePeriod time.Duration
}

// IntakeConfig holds the detection-intake polling policy.
type IntakeConfig struct {
	// ExchangeFile is the hand-off artifact written by the recognition producer.
	ExchangeFile string
	// PollInterval is how often the intake job checks the exchange artifact.
	PollInterval time.Duration
	// FreshnessWindow discards detection events older than this. Zero disables
	// the filter.
	FreshnessWindow time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Store = StoreConfig{
		Type:            getEnv("STORE_TYPE", "file"),
		DataDir:         getEnv("DATA_DIR", "data"),
		RosterFile:      getEnv("ROSTER_FILE", "data/employees_data.csv"),
		CredentialsFile: getEnv("CREDENTIALS_FILE", "credentials.json"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	gracePeriod, err := time.ParseDuration(getEnv("GRACE_PERIOD", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid GRACE_PERIOD: %w", err)
	}

	config.Attendance = AttendanceConfig{
		OfficeStart: getEnv("OFFICE_START", "09:00"),
		GracePeriod: gracePeriod,
	}

	pollInterval, err := time.ParseDuration(getEnv("INTAKE_POLL_INTERVAL", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid INTAKE_POLL_INTERVAL: %w", err)
	}

	freshnessWindow, err := time.ParseDuration(getEnv("INTAKE_FRESHNESS_WINDOW", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid INTAKE_FRESHNESS_WINDOW: %w", err)
	}

	config.Intake = IntakeConfig{
		ExchangeFile:    getEnv("EXCHANGE_FILE", "data/recognized_id.json"),
		PollInterval:    pollInterval,
		FreshnessWindow: freshnessWindow,
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Store.Type != "file" && c.Store.Type != "postgres" {
		return fmt.Errorf("STORE_TYPE must be file or postgres, got %q", c.Store.Type)
	}
	if c.Store.Type == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when STORE_TYPE=postgres")
	}
	if _, err := time.Parse("15:04", c.Attendance.OfficeStart); err != nil {
		return fmt.Errorf("OFFICE_START must be in HH:MM format: %w", err)
	}
	if c.Intake.PollInterval <= 0 {
		return fmt.Errorf("INTAKE_POLL_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
