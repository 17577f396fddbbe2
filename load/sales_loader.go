package load

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// SalesLoader отвечает за загрузку фактов продаж в facts_sales
type SalesLoader struct {
	db     *sqlx.DB
	logger *utils.ETLLogger
}

// NewSalesLoader создает новый экземпляр SalesLoader
func NewSalesLoader(db *sqlx.DB, logger *utils.ETLLogger) *SalesLoader {
	return &SalesLoader{
		db:     db,
		logger: logger,
	}
}

// Load загружает факты продаж в OLAP. Все факты одного запуска вставляются
// в рамках одной транзакции: при любой ошибке транзакция откатывается.
func (l *SalesLoader) Load(facts []models.SalesFact) error {
	if len(facts) == 0 {
		l.logger.Debug("Нет фактов продаж для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки фактов продаж (всего: %d)", len(facts))

	// Начинаем транзакцию
	tx, err := l.db.Beginx()
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	// Подготавливаем именованный запрос в транзакции
	stmt, err := tx.PrepareNamed(`
		INSERT INTO facts_sales (user_id, time_id, price)
		VALUES (:user_id, :time_id, :price)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при подготовке запроса: %w", err)
	}
	defer stmt.Close()

	processed := 0

	// Вставляем каждый факт
	for _, fact := range facts {
		if _, err := stmt.Exec(fact); err != nil {
			tx.Rollback()
			return fmt.Errorf("ошибка при вставке факта продажи (user_id=%d, time_id=%d): %w",
				fact.UserID, fact.TimeID, err)
		}

		processed++

		// Логируем прогресс каждые 100 фактов
		if processed%100 == 0 {
			l.logger.Debug("Загружено %d из %d фактов продаж...", processed, len(facts))
		}
	}

	// Фиксируем транзакцию
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	duration := time.Since(startTime)
	l.logger.Info("Загрузка фактов продаж завершена. Загружено записей: %d. Длительность: %v", processed, duration)

	return nil
}
