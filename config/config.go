package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	MongoURI           string
	MongoDB            string
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string
	FrontendOrigins    string
	FrontendLoginURL   string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present) and collects all settings. Values from .env
// override the inherited environment, same as the dev setup expects.
func Load() Config {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:               getEnv("PORT", "3000"),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDB:            getEnv("MONGO_DB", "skilltag"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		OAuthRedirectURL:   getEnv("OAUTH_REDIRECT_URL", "http://localhost:3000/api/auth/google/callback"),
		FrontendOrigins:    getEnv("FRONTEND_ORIGINS", "http://localhost:5173"),
		FrontendLoginURL:   os.Getenv("FRONTEND_LOGIN_URL"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	return cfg
}
