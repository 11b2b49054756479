package config

import (
	"os"
)

type Config struct {
	MongoURI string
	RedisURI string
	Port     string
}

func Load() *Config {
	// The original deployment used DATABASE_URL; keep it as a fallback alias.
	mongoURI := getEnv("MONGODB_URI", "")
	if mongoURI == "" {
		mongoURI = getEnv("DATABASE_URL", "mongodb://localhost:27017/journal")
	}

	return &Config{
		MongoURI: mongoURI,
		RedisURI: getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Port:     getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
