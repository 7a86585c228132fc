package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	Telegram TelegramConfig
	Catalog  CatalogConfig
	HTTP     HTTPConfig
	Lang     string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Token string
}

type CatalogConfig struct {
	Source      string // "builtin", "yaml" or "postgres"
	File        string // path for the yaml source
	AutoMigrate bool
}

type HTTPConfig struct {
	Addr string // empty disables the HTTP API
}

// NeedsDB reports whether startup has to open a Postgres pool.
func (c *Config) NeedsDB() bool {
	return c.Catalog.Source == "postgres"
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	autoMigrate := strings.TrimSpace(os.Getenv("AUTO_MIGRATE"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "foodapp"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Catalog: CatalogConfig{
			Source:      strings.ToLower(getEnv("CATALOG_SOURCE", "builtin")),
			File:        getEnv("CATALOG_FILE", "catalog.yaml"),
			AutoMigrate: autoMigrate == "1" || strings.EqualFold(autoMigrate, "true"),
		},
		HTTP: HTTPConfig{
			Addr: lookupEnv("HTTP_ADDR", ":8080"),
		},
		Lang: getEnv("DEFAULT_LANG", "en"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// lookupEnv is like getEnv but keeps a value that is set and empty.
func lookupEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}
