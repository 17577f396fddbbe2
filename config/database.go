package config

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/utils"
)

// ConnectDatabase устанавливает подключение к OLAP базе данных (целевой).
// multiStatements нужен для выполнения DDL-скрипта схемы одним запросом.
func ConnectDatabase(cfg ETLConfig, logger *utils.ETLLogger) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
	)

	db, err := sqlx.Open(cfg.Database.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к OLAP базе данных: %w", err)
	}

	// Настройка параметров подключения
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Проверка подключения
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось установить соединение с OLAP базой данных: %w", err)
	}

	logger.Info("Успешное подключение к OLAP базе данных")
	return db, nil
}

// CloseDatabase закрывает подключение к базе данных
func CloseDatabase(db *sqlx.DB, logger *utils.ETLLogger) {
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		logger.Error("Ошибка при закрытии соединения с OLAP базой данных: %v", err)
		return
	}

	logger.Info("Соединение с базой данных закрыто")
}
