package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Files  FilesConfig
	Report ReportConfig
	Admin  AdminConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// FilesConfig holds the two durable stores and the export directory
type FilesConfig struct {
	RosterFile string
	LogFile    string
	ExportDir  string
}

// ReportConfig holds reporting configuration
type ReportConfig struct {
	Timezone string
}

type AdminConfig struct {
	Secret string
}

func Load() (*Config, error) {
	// Missing .env is fine; variables may come from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Durable file configuration
	config.Files = FilesConfig{
		RosterFile: getEnv("ROSTER_FILE", "employees.xlsx"),
		LogFile:    getEnv("ATTENDANCE_LOG_FILE", "attendance.csv"),
		ExportDir:  getEnv("EXPORT_DIR", "exports"),
	}

	// Reporting configuration
	config.Report = ReportConfig{
		Timezone: getEnv("REPORT_TIMEZONE", "UTC"),
	}

	// Admin configuration
	config.Admin = AdminConfig{
		Secret: getEnv("ADMIN_SECRET", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Files.RosterFile == "" {
		return fmt.Errorf("ROSTER_FILE is required")
	}
	if c.Files.LogFile == "" {
		return fmt.Errorf("ATTENDANCE_LOG_FILE is required")
	}
	if c.Admin.Secret == "" {
		return fmt.Errorf("ADMIN_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
