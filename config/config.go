package config

import (
	"errors"
	"os"
)

type Config struct {
	DatabaseURL   string `json:"database_url"`
	TelegramToken string `json:"telegram_token"`
	Timezone      string `json:"timezone"`
	ScheduleURL   string `json:"schedule_url"` // источник глобального расписания, может быть пуст
	HTTPAddr      string `json:"http_addr"`    // адрес health-сервера, может быть пуст
}

func LoadConfig() (Config, error) {
	config := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Timezone:      os.Getenv("TIMEZONE"),
		ScheduleURL:   os.Getenv("SCHEDULE_URL"),
		HTTPAddr:      os.Getenv("HTTP_ADDR"),
	}
	if config.TelegramToken == "" {
		return config, errors.New("переменная TELEGRAM_TOKEN не задана")
	}
	if config.DatabaseURL == "" {
		return config, errors.New("переменная DATABASE_URL не задана")
	}
	return config, nil
}
