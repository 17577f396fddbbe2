package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ETLConfig содержит конфигурацию для ETL-процесса
type ETLConfig struct {
	// Конфигурация для подключения к OLAP БД (целевой)
	Database DatabaseConfig `json:"database"`

	// Каталог с CSV-файлами продаж
	DataDir string `json:"data_dir" validate:"required"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver" validate:"required"`
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	User     string `json:"user" validate:"required"`
	Password string `json:"password"`
	DBName   string `json:"dbname" validate:"required"`
}

// Значения конфигурации по умолчанию
var DefaultConfig = ETLConfig{
	Database: DatabaseConfig{
		Driver: "mysql",
		Host:   "localhost",
		Port:   3306,
		User:   "root",
		DBName: "sales_analytics",
	},
	DataDir:               "./data",
	EnableDetailedLogging: true,
}

// LoadConfig загружает конфигурацию ETL из переменных окружения.
// Файл .env, если он существует, загружается автоматически.
// Используемые переменные: DB_USER, DB_PASSWORD, DB_DIRECTION, DB_PORT,
// DB_TO_USE, DATA_DIR, ETL_VERBOSE.
func LoadConfig() (ETLConfig, error) {
	// Загружаем переменные окружения из файла .env (его отсутствие не является ошибкой)
	_ = godotenv.Load()

	cfg := DefaultConfig

	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_DIRECTION"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return ETLConfig{}, fmt.Errorf("некорректное значение DB_PORT %q: %w", v, err)
		}
		cfg.Database.Port = port
	}
	if v := os.Getenv("DB_TO_USE"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ETL_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return ETLConfig{}, fmt.Errorf("некорректное значение ETL_VERBOSE %q: %w", v, err)
		}
		cfg.EnableDetailedLogging = verbose
	}

	// Проверяем заполненность конфигурации
	if err := validator.New().Struct(cfg); err != nil {
		return ETLConfig{}, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return cfg, nil
}
