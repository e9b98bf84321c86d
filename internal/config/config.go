package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// единственный оператор приложения; пароль хэшируется при старте
	AppUsername string
	AppPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AppUsername:   os.Getenv("APP_USERNAME"),
		AppPassword:   os.Getenv("APP_PASSWORD"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev_secret_change_me"
		slog.Warn("SESSION_SECRET is not set, using dev secret")
	}
	if cfg.AppUsername == "" {
		cfg.AppUsername = "admin"
	}
	if cfg.AppPassword == "" {
		cfg.AppPassword = "3305"
		slog.Warn("APP_PASSWORD is not set, using default password")
	}

	return cfg
}
