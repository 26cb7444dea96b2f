package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "invoices"
user = "app"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "hospitality", cfg.Mongo.Database)
	assert.Equal(t, 75.0, cfg.Pricing.DefaultPricePerGuest)
	assert.Equal(t, 100.0, cfg.Pricing.PrivatisationRatePerGuest)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "host=localhost port=5432 user=app password= dbname=invoices sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[database]
dbname = "invoices"

[auth]
enabled = true
`)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.HTTPPort)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "missing dbname", content: `[server]
http_port = 8080`},
		{name: "auth without secret", content: `[database]
dbname = "x"
[auth]
enabled = true`},
		{name: "bad port env", content: `[database]
dbname = "x"`, env: map[string]string{"HTTP_PORT": "eighty"}},
		{name: "zero price", content: `[database]
dbname = "x"
[pricing]
default_price_per_guest = 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
