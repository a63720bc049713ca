package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string // development | production
	DBDriver     string // memory | sqlite
	DBSource     string
	AllowOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment")
	}

	return &Config{
		Port:         getEnv("PORT", "8000"),
		Env:          getEnv("APP_ENV", "development"),
		DBDriver:     getEnv("DB_DRIVER", "memory"),
		DBSource:     getEnv("DB_SOURCE", "zaika.db"),
		AllowOrigins: strings.Split(getEnv("ALLOW_ORIGINS", "*"), ","),
	}
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
