package config

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMongoTestConfig() *Config {
	cfg := &Config{
		Auth:     &AuthConfig{SigningKey: "signing-key"},
		Accounts: &AccountsConfig{SecretKey: base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))},
		Mongo:    &MongoConfig{URI: "mongodb://localhost:27017", Database: "tracker"},
	}
	cfg.Storage.Driver = StorageDriverMongo

	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "UTC", cfg.Env.TimeZone)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultStorageTimeout, cfg.Storage.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenExpiry)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 10, cfg.Accounts.CodeMaxLength)
	assert.Equal(t, defaultBulkWorkers, cfg.Accounts.BulkWorkers)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid mongo configuration", func(t *testing.T) {
		require.NoError(t, newMongoTestConfig().Validate())
	})

	t.Run("missing signing key", func(t *testing.T) {
		cfg := newMongoTestConfig()
		cfg.Auth.SigningKey = " "
		assert.ErrorContains(t, cfg.Validate(), "auth.signingKey")
	})

	t.Run("secret key of wrong length", func(t *testing.T) {
		cfg := newMongoTestConfig()
		cfg.Accounts.SecretKey = base64.StdEncoding.EncodeToString([]byte("short"))
		assert.ErrorContains(t, cfg.Validate(), "32 bytes")
	})

	t.Run("secret key not base64", func(t *testing.T) {
		cfg := newMongoTestConfig()
		cfg.Accounts.SecretKey = "%%%"
		assert.ErrorContains(t, cfg.Validate(), "base64")
	})

	t.Run("unknown time zone", func(t *testing.T) {
		cfg := newMongoTestConfig()
		cfg.Env.TimeZone = "Mars/Olympus"
		assert.ErrorContains(t, cfg.Validate(), "env.timeZone")
	})

	t.Run("postgres driver without postgres block", func(t *testing.T) {
		cfg := newMongoTestConfig()
		cfg.Storage.Driver = StorageDriverPostgres
		assert.ErrorContains(t, cfg.Validate(), "postgres configuration")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := newMongoTestConfig()
		cfg.Storage.Driver = "sqlite"
		assert.ErrorContains(t, cfg.Validate(), "unknown storage driver")
	})
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{}
	cfg.Env.TimeZone = "Asia/Riyadh"

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Riyadh", loc.String())
}
