package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	AdminUser      string
	AdminPass      string
	JWTSecret      string
	PedomanDomains string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Asia/Jakarta"),
		DBPath:         get("DB_PATH", "simpupuk.db"),
		AdminUser:      get("ADMIN_USER", "admin"),
		AdminPass:      get("ADMIN_PASS", "admin"),
		JWTSecret:      get("JWT_SECRET", "rahasia-dev"),
		PedomanDomains: get("PEDOMAN_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s tz=%s db=%s", cfg.Port, cfg.Timezone, cfg.DBPath)
	return cfg
}
