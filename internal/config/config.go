package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	JWTSecret     string
	SessionExpiry time.Duration

	FrontendURL string
	BaseURL     string

	Google OAuthConfig
	GitHub OAuthConfig
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	sessionExpiry, err := time.ParseDuration(getEnv("SESSION_EXPIRY", "720h"))
	if err != nil {
		sessionExpiry = 720 * time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8001"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnvOrPanic("DATABASE_URL"),

		JWTSecret:     getEnvOrPanic("JWT_SECRET"),
		SessionExpiry: sessionExpiry,

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000/"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8001"),

		Google: OAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		},
		GitHub: OAuthConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GITHUB_REDIRECT_URL", ""),
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
