package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Store backend names accepted in STORE.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	Port   string
	Store  string
	DBPath string
}

// Load reads configuration from the environment, with a .env file as the
// optional local source. Missing variables fall back to defaults.
func Load() Config {
	godotenv.Load()

	return Config{
		Port:   getenv("PORT", "8080"),
		Store:  getenv("STORE", StoreSQLite),
		DBPath: getenv("DB_PATH", "./oldisgold.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
