package load

import (
	"fmt"

	"github.com/LilVoxy/coursework_sales/models"
)

// FactStatistics рассчитывает статистику по таблице facts_sales на стороне
// базы данных: минимальную, максимальную и среднюю цену, а также количество
// записей. Для пустой таблицы возвращается снимок с нулевым счетчиком.
func (m *LoadManager) FactStatistics() (*models.FactSalesStats, error) {
	var count int
	if err := m.db.Get(&count, "SELECT COUNT(id) FROM facts_sales"); err != nil {
		return nil, fmt.Errorf("ошибка при подсчете записей facts_sales: %w", err)
	}

	if count == 0 {
		return &models.FactSalesStats{}, nil
	}

	query := `
	SELECT
		MIN(price) AS min_price,
		MAX(price) AS max_price,
		ROUND(AVG(price), 2) AS avg_price,
		COUNT(id) AS record_count
	FROM facts_sales
	`

	var dbStats models.FactSalesStats
	if err := m.db.Get(&dbStats, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении статистики facts_sales: %w", err)
	}

	return &dbStats, nil
}
