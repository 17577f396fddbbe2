package stats

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatisticsManager накапливает глобальную статистику цен по всем
// обработанным файлам в памяти: минимум, максимум, сумму и количество
type StatisticsManager struct {
	minValue    decimal.Decimal
	maxValue    decimal.Decimal
	totalSum    decimal.Decimal
	recordCount int
}

// Statistics представляет снимок накопленной статистики
type Statistics struct {
	Min         decimal.Decimal
	Max         decimal.Decimal
	Average     decimal.Decimal
	RecordCount int
}

// NewStatisticsManager создает новый экземпляр StatisticsManager
func NewStatisticsManager() *StatisticsManager {
	return &StatisticsManager{}
}

// Update обновляет статистику новым значением цены
func (m *StatisticsManager) Update(value decimal.Decimal) {
	if m.recordCount == 0 || value.LessThan(m.minValue) {
		m.minValue = value
	}
	if m.recordCount == 0 || value.GreaterThan(m.maxValue) {
		m.maxValue = value
	}
	m.totalSum = m.totalSum.Add(value)
	m.recordCount++
}

// GetStatistics возвращает текущую статистику, округленную до двух знаков.
// Если записей еще не было, возвращается пустой снимок с нулевым счетчиком.
func (m *StatisticsManager) GetStatistics() Statistics {
	if m.recordCount == 0 {
		return Statistics{}
	}

	return Statistics{
		Min:         m.minValue.Round(2),
		Max:         m.maxValue.Round(2),
		Average:     m.totalSum.Div(decimal.NewFromInt(int64(m.recordCount))).Round(2),
		RecordCount: m.recordCount,
	}
}

// String форматирует статистику для вывода в лог
func (s Statistics) String() string {
	if s.RecordCount == 0 {
		return "min: - , max: - , average: - , record_count: 0"
	}
	return fmt.Sprintf("min: %s, max: %s, average: %s, record_count: %d",
		s.Min, s.Max, s.Average, s.RecordCount)
}
