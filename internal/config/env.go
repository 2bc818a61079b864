package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	CORSOrigins []string
	// FetchLimit caps every list read.
	FetchLimit int
	// RateLimit is requests per second across all clients; 0 disables it.
	RateLimit      float64
	RateLimitBurst int
}

func LoadEnv() Env {
	return Env{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		GinMode:        getenv("GIN_MODE", ""),
		DBDriver:       strings.ToLower(getenv("DB_DRIVER", DriverMySQL)),
		DBHost:         getenv("DB_HOST", "127.0.0.1:3306"),
		DBUser:         getenv("DB_USER", "root"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME", "airline"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "*")),
		FetchLimit:     getInt("FETCH_LIMIT", 1000),
		RateLimit:      getFloat("RATE_LIMIT", 0),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 50),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("warning: ignoring %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		log.Printf("warning: ignoring %s=%q, using %g", key, raw, fallback)
		return fallback
	}
	return f
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
