package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
	Seed        bool
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/palettepicker?sslmode=disable"),
		Seed:        os.Getenv("SEED") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
