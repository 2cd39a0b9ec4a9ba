package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	ServerPort     string
	PostgresDSN    string
	JWTSecretKey   string
	AccessTokenTTL int // in minutes
	RedisAddr      string
	RedisPassword  string
}

func Load() *Config {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	return &Config{
		ServerPort:     getEnvDefault("SERVER_PORT", "8080"),
		PostgresDSN:    getEnv("POSTGRES_DSN"),
		JWTSecretKey:   getEnv("JWT_SECRET_KEY"),
		AccessTokenTTL: getEnvIntDefault("ACCESS_TOKEN_TTL_MIN", 60),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}
}

// getEnv retrieves the value of the environment variable named by the key.
func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	panic("critical config missing: " + key)
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvIntDefault(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}
