package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MONGO_URI", "MONGO_DB", "MONGO_OP_TIMEOUT", "PORT", "ENV", "CORS_ORIGINS", "SERVER_IDLE_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "bambugoods", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Mongo.OpTimeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "catalog_test")
	t.Setenv("MONGO_OP_TIMEOUT", "2s")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_IDLE_TIMEOUT", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "catalog_test", cfg.Mongo.Database)
	assert.Equal(t, 2*time.Second, cfg.Mongo.OpTimeout)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 90*time.Second, cfg.Server.IdleTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.Log.Pretty)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Mongo: MongoConfig{URI: "mongodb://x", Database: "db", OpTimeout: time.Second}}
	assert.NoError(t, cfg.Validate())

	cfg.Mongo.Database = ""
	assert.Error(t, cfg.Validate())

	cfg.Mongo.Database = "db"
	cfg.Mongo.OpTimeout = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("MONGO_OP_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
