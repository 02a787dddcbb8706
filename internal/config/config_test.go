package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[vendor]
base_url = "https://sandbox.example.com/api"
timeout = 15

[storage]
backend = "postgres"

[database]
host = "db"
user = "gw"
dbname = "gw"

[cors]
allowed_origins = ["https://agents.example.com"]
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 15, cfg.Vendor.Timeout)
	assert.Equal(t, StoragePostgres, cfg.Storage.Backend)
	assert.Equal(t, "rayna_bookings", cfg.Storage.Key)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"https://agents.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "host=db port=5432 user=gw password= dbname=gw sslmode=disable", cfg.Database.DSN())
}

func TestValidate(t *testing.T) {
	cfg, err := Parse(sample)
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "token is required")

	cfg.Vendor.Token = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Backend = "bolt"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("VENDOR_API_TOKEN", " secret ")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("REDIS_PASSWORD", "rpw")

	cfg := defaults()
	applyEnv(cfg)

	assert.Equal(t, "secret", cfg.Vendor.Token)
	assert.Equal(t, "pw", cfg.Database.Password)
	assert.Equal(t, "rpw", cfg.Redis.Password)
}
