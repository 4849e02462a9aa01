package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/registro/attendance-backend-go/internal/pkg/shiftclock"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Shift    ShiftConfig
	Export   ExportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port       int
	Env        string
	LogLevel   string
	CORSOrigin string
}

// ShiftConfig holds the shift boundary times. All values are wall-clock
// "HH:mm" settings; the change time splits the day into the two shift
// windows.
type ShiftConfig struct {
	ChangeTime     shiftclock.TimeOfDay
	MorningEntry   shiftclock.TimeOfDay
	MorningExit    shiftclock.TimeOfDay
	AfternoonEntry shiftclock.TimeOfDay
	AfternoonExit  shiftclock.TimeOfDay
}

// ExportConfig holds the spreadsheet export settings.
type ExportConfig struct {
	OutputDirectory   string
	OutputFileName    string
	SpaceBetweenTurns int
}

func Load() (*Config, error) {
	// .env is optional; real deployments may configure through the
	// environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "registro"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	// Shift configuration
	config.Shift, err = loadShiftConfig()
	if err != nil {
		return nil, err
	}

	// Export configuration
	spacing, err := strconv.Atoi(getEnv("EXPORT_SPACE_BETWEEN_TURNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_SPACE_BETWEEN_TURNS: %w", err)
	}

	config.Export = ExportConfig{
		OutputDirectory:   getEnv("EXPORT_OUTPUT_DIRECTORY", "."),
		OutputFileName:    getEnv("EXPORT_OUTPUT_FILE_NAME", "attendance-report"),
		SpaceBetweenTurns: spacing,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadShiftConfig() (ShiftConfig, error) {
	var (
		cfg ShiftConfig
		err error
	)

	fields := []struct {
		dst      *shiftclock.TimeOfDay
		key      string
		fallback string
	}{
		{&cfg.ChangeTime, "SHIFT_CHANGE_TIME", "13:00"},
		{&cfg.MorningEntry, "SHIFT_MORNING_ENTRY", "08:00"},
		{&cfg.MorningExit, "SHIFT_MORNING_EXIT", "13:00"},
		{&cfg.AfternoonEntry, "SHIFT_AFTERNOON_ENTRY", "13:00"},
		{&cfg.AfternoonExit, "SHIFT_AFTERNOON_EXIT", "21:00"},
	}

	for _, f := range fields {
		*f.dst, err = shiftclock.ParseTimeOfDay(getEnv(f.key, f.fallback))
		if err != nil {
			return ShiftConfig{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Export.SpaceBetweenTurns < 0 {
		return fmt.Errorf("EXPORT_SPACE_BETWEEN_TURNS must not be negative")
	}
	return nil
}

// Clock builds the shift clock from the configured boundary times.
func (c *Config) Clock() shiftclock.Clock {
	return shiftclock.Clock{
		ChangeTime:     c.Shift.ChangeTime,
		MorningEntry:   c.Shift.MorningEntry,
		MorningExit:    c.Shift.MorningExit,
		AfternoonEntry: c.Shift.AfternoonEntry,
		AfternoonExit:  c.Shift.AfternoonExit,
	}
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
