package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	Port       string
	GinMode    string
	LogLevel   string
	CORSOrigin string
	JWTSecret  []byte
	Database   DatabaseConfig
	Upstream   UpstreamConfig
	RateLimit  RateLimitConfig

	// TrustedProxies are the peers whose X-Forwarded-For gin honours.
	TrustedProxies []string
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

// UpstreamConfig holds the base URLs the web client layer calls.
// They may point back at this process.
type UpstreamConfig struct {
	FoodCatalogueURL     string // API_URL_FC
	RestaurantListingURL string // API_URL_RL
	OrderURL             string // API_URL_OS
	Timeout              time.Duration
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads the configuration from the environment. Call godotenv.Load
// beforehand to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:4200"),
	}

	for _, p := range strings.Split(getEnv("TRUSTED_PROXIES", "127.0.0.1,::1"), ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q", p)
			}
		}
		cfg.TrustedProxies = append(cfg.TrustedProxies, p)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWTSecret = []byte(secret)

	cfg.Database.Driver = strings.ToLower(getEnv("DB_DRIVER", DriverSQLite))
	switch cfg.Database.Driver {
	case DriverSQLite:
		cfg.Database.DSN = getEnv("DB_DSN", "food_delivery.db")
	case DriverMySQL:
		cfg.Database.DSN = os.Getenv("DB_DSN")
		if cfg.Database.DSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for driver %q", DriverMySQL)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	self := "http://localhost:" + cfg.Port
	var err error
	if cfg.Upstream.FoodCatalogueURL, err = getURL("API_URL_FC", self); err != nil {
		return nil, err
	}
	if cfg.Upstream.RestaurantListingURL, err = getURL("API_URL_RL", self); err != nil {
		return nil, err
	}
	if cfg.Upstream.OrderURL, err = getURL("API_URL_OS", self); err != nil {
		return nil, err
	}

	timeout := getEnv("HTTP_CLIENT_TIMEOUT", "10s")
	cfg.Upstream.Timeout, err = time.ParseDuration(timeout)
	if err != nil || cfg.Upstream.Timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT %q", timeout)
	}

	rps := getEnv("RATE_LIMIT_RPS", "50")
	cfg.RateLimit.RequestsPerSecond, err = strconv.ParseFloat(rps, 64)
	if err != nil || cfg.RateLimit.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", rps)
	}
	burst := getEnv("RATE_LIMIT_BURST", "100")
	cfg.RateLimit.Burst, err = strconv.Atoi(burst)
	if err != nil || cfg.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", burst)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getURL reads an absolute http(s) base URL, trimming any trailing slash.
func getURL(key, fallback string) (string, error) {
	raw := strings.TrimRight(getEnv(key, fallback), "/")
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid %s %q", key, raw)
	}
	return raw, nil
}
