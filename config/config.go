package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURL string
	DBName   string
	Port     string
	GinMode  string
}

// Load reads .env (if present) and the environment. Every setting has a
// development default so the server boots with no configuration at all.
func Load() *Config {
	// A missing .env is fine — production supplies real env vars.
	_ = godotenv.Load()

	return &Config{
		MongoURL: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "majestea"),
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
