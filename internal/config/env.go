package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	SeedData   bool
}

func LoadEnv() Env {
	// .env is optional; deployments usually set vars directly.
	_ = godotenv.Load()

	return Env{
		AppAddr:    getEnv("APP_ADDR", ":8080"),
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBHost:     getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getEnv("DB_NAME", "born2ride"),
		SeedData:   strings.EqualFold(getEnv("SEED_DATA", "false"), "true"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
