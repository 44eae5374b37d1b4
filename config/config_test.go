package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "majestea", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db.internal:27017")
	t.Setenv("DB_NAME", "majestea_prod")
	t.Setenv("PORT", "9000")

	cfg := Load()
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURL)
	assert.Equal(t, "majestea_prod", cfg.DBName)
	assert.Equal(t, "9000", cfg.Port)
}
