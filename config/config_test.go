package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("API_URL_FC", "")
	t.Setenv("API_URL_RL", "")
	t.Setenv("API_URL_OS", "")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "food_delivery.db", cfg.Database.DSN)
	assert.Equal(t, "http://localhost:9090", cfg.Upstream.FoodCatalogueURL)
	assert.Equal(t, "http://localhost:9090", cfg.Upstream.OrderURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 50.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"127.0.0.1", "::1"}, cfg.TrustedProxies)
}

func TestLoadTrustedProxies(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, 192.168.1.5 ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"}, cfg.TrustedProxies)
}

func TestLoadTrimsUpstreamURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("API_URL_FC", "http://catalogue:9092/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://catalogue:9092", cfg.Upstream.FoodCatalogueURL)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"mysql without dsn", map[string]string{"DB_DRIVER": "mysql", "DB_DSN": ""}},
		{"relative upstream", map[string]string{"API_URL_FC": "catalogue:9092"}},
		{"bad timeout", map[string]string{"HTTP_CLIENT_TIMEOUT": "soon"}},
		{"zero rps", map[string]string{"RATE_LIMIT_RPS": "0"}},
		{"bad burst", map[string]string{"RATE_LIMIT_BURST": "many"}},
		{"bad proxy", map[string]string{"TRUSTED_PROXIES": "127.0.0.1,proxy.local"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
