package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	APIBase     string
	OutboundRPS int
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	AgencyTTL   time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":3000"),
		MetricsAddr: env("METRICS_ADDR", ""),
		APIBase:     env("API_BASE_URL", "https://nemesistech.in/api/v1"),
		OutboundRPS: atoi("OUTBOUND_RPS", 5),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		AgencyTTL:   time.Duration(atoi("AGENCY_CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	// PORT alone is enough for platforms that only hand out a port number.
	if p := os.Getenv("PORT"); p != "" {
		c.HTTPAddr = ":" + p
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
