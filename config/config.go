package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverFile   = "file"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type StorageConfig struct {
	// Driver selects the persistence strategy: "memory" or "file".
	Driver   string
	FilePath string
	// Seed controls whether an empty storage is populated with the demo
	// events at startup.
	Seed bool
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env is optional; in production everything comes from the real
	// environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Mode: getEnv("GIN_MODE", "release"),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", StorageDriverMemory),
			FilePath: getEnv("STORAGE_FILE_PATH", "data/events.json"),
			Seed:     getEnv("STORAGE_SEED", "true") == "true",
		},
	}
	return AppConfig
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
