package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string

	// Addr is the listen address for the HTTP server, e.g. ":8080".
	Addr string

	// SessionSecret signs the flash/session cookies.
	SessionSecret string

	// SharedAccount is the id of the reserved member document whose links are
	// visible to every member. Configurable so tests and deployments can
	// substitute their own sentinel.
	SharedAccount string
}

// DefaultSharedAccount is the shared-account document id used when
// SHARED_ACCOUNT is not set.
const DefaultSharedAccount = "Wassociates"

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		Addr:          os.Getenv("APP_ADDR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SharedAccount: os.Getenv("SHARED_ACCOUNT"),
	}

	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		log.Fatal("Required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set.")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.SharedAccount == "" {
		cfg.SharedAccount = DefaultSharedAccount
	}

	return cfg
}
