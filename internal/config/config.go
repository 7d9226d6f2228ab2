package config

import (
    "fmt"
    "os"
    "github.com/joho/godotenv"
)

type Config struct {
    TelegramToken   string
    APIBaseURL      string
    StateDir        string
    DefaultTimezone string
}

func LoadConfig() (*Config, error) {
    // .env опционален: в облаке переменные приходят из окружения
    _ = godotenv.Load()

    cfg := &Config{
        TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
        APIBaseURL:      getenv("API_BASE_URL", "http://localhost:8000/api/v1"),
        StateDir:        getenv("STATE_DIR", "./state"),
        DefaultTimezone: getenv("DEFAULT_TIMEZONE", "Europe/Moscow"),
    }

    if cfg.TelegramToken == "" {
        return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
    }

    return cfg, nil
}

func getenv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
