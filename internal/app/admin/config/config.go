package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config содержит все настройки админ-панели storefront
// Включает конфигурацию HTTP сервера, storefront API и фонового обновления
type Config struct {
	Server     ServerConfig
	Storefront StorefrontConfig
	Refresh    RefreshConfig
	LogLevel   string
}

// ServerConfig - настройки HTTP сервера админ-панели
type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8085)
}

// StorefrontConfig - настройки подключения к storefront REST API
// Это единственный внешний источник данных: админ-панель ничего не хранит сама
type StorefrontConfig struct {
	// BaseURL - базовый адрес storefront API.
	// Значение по умолчанию http://localhost:3000/api рассчитано ТОЛЬКО на
	// локальную разработку; в любом другом окружении задается через
	// STOREFRONT_API_URL
	BaseURL string
	// TimeoutSec - таймаут HTTP запросов к storefront API в секундах.
	// При превышении клиент возвращает ошибку вида Timeout
	TimeoutSec int
}

// RefreshConfig - настройки фонового обновления dashboard снапшота
type RefreshConfig struct {
	// Schedule - cron-выражение (формат robfig/cron). Пустая строка
	// отключает фоновое обновление
	Schedule string
}

// Load загружает конфигурацию из переменных окружения
// Возвращает ошибку, если не удалось распарсить значения
func Load() (*Config, error) {
	timeoutSec, err := strconv.Atoi(getEnv("STOREFRONT_API_TIMEOUT_SEC", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid STOREFRONT_API_TIMEOUT_SEC value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8085"),
		},
		Storefront: StorefrontConfig{
			BaseURL:    getEnv("STOREFRONT_API_URL", "http://localhost:3000/api"),
			TimeoutSec: timeoutSec,
		},
		Refresh: RefreshConfig{
			Schedule: getEnv("DASHBOARD_REFRESH_SCHEDULE", "@every 1m"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Address возвращает адрес сервера в формате host:port для HTTP сервера
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
// Используется для гибкой конфигурации через environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
