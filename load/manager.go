package load

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// LoadManager отвечает за управление процессом загрузки данных в OLAP
type LoadManager struct {
	db     *sqlx.DB
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager создает новый экземпляр LoadManager
func NewLoadManager(db *sqlx.DB, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		db:     db,
		logger: logger,
		loader: NewOLAPLoader(db, logger),
	}
}

// Load выполняет фазу загрузки данных ETL-процесса для одного файла.
// Сначала для каждой строки разрешаются суррогатные ключи измерений
// (поиск или вставка), затем все факты вставляются одной транзакцией.
func (m *LoadManager) Load(transformedData *models.TransformedData) (*models.LoadResult, error) {
	startTime := time.Now()
	m.logger.Info("Начало фазы Load (Загрузка данных). Файл: %s", transformedData.SourceFile)

	result := &models.LoadResult{}
	facts := make([]models.SalesFact, 0, len(transformedData.Rows))

	// 1. Разрешаем измерения и формируем факты
	for _, row := range transformedData.Rows {
		userID, userCreated, err := m.loader.ResolveUserDimension(row.UserKey)
		if err != nil {
			m.logger.Error("Ошибка при разрешении измерения пользователей: %v", err)
			return nil, fmt.Errorf("ошибка при разрешении измерения пользователей: %w", err)
		}
		if userCreated {
			result.UsersCreated++
		}

		timeID, timeCreated, err := m.loader.ResolveTimeDimension(row)
		if err != nil {
			m.logger.Error("Ошибка при разрешении временного измерения: %v", err)
			return nil, fmt.Errorf("ошибка при разрешении временного измерения: %w", err)
		}
		if timeCreated {
			result.TimesCreated++
		}

		facts = append(facts, models.SalesFact{
			UserID: userID,
			TimeID: timeID,
			Price:  row.Price,
		})
	}

	// 2. Загружаем факты продаж
	if err := m.loader.LoadSalesFacts(facts); err != nil {
		m.logger.Error("Ошибка при загрузке фактов продаж: %v", err)
		return nil, fmt.Errorf("ошибка при загрузке фактов продаж: %w", err)
	}
	result.FactsLoaded = len(facts)

	duration := time.Since(startTime)
	m.logger.Info("Фаза Load завершена. Загружено фактов: %d (новых пользователей: %d, новых дат: %d). Длительность: %v",
		result.FactsLoaded, result.UsersCreated, result.TimesCreated, duration)

	return result, nil
}
