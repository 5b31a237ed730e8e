package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        int
	OutDir      string
	DatabaseURL string
	NatsURL     string
	NatsToken   string
	LogLevel    string
}

func Load() Config {
	// A .env next to the binary is convenient for local runs; absence is fine.
	_ = godotenv.Load()

	return Config{
		Port:        envInt("SCRIBE_PORT", 8760),
		OutDir:      envStr("SCRIBE_OUT_DIR", "./cleaned"),
		DatabaseURL: envStr("DATABASE_URL", ""),
		NatsURL:     envStr("NATS_URL", "nats://localhost:4222"),
		NatsToken:   envStr("NATS_TOKEN", ""),
		LogLevel:    envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
