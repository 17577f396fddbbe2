package transform

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// Формат даты в колонке timestamp исходных CSV-файлов (MM/DD/YYYY)
const timestampLayout = "01/02/2006"

// Transformer координирует процесс очистки и преобразования строк продаж
type Transformer struct {
	logger *utils.ETLLogger
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger: logger,
	}
}

// Transform выполняет фазу Transform для одного файла: отбраковывает
// некорректные строки и дополняет оставшиеся календарными полями.
// readErrors - количество строк, отброшенных еще на фазе Extract.
func (t *Transformer) Transform(sourceFile string, records []models.RawSalesRecord, readErrors int) *models.TransformedData {
	startTime := time.Now()
	t.logger.Info("Начало фазы Transform (Преобразование данных). Файл: %s", sourceFile)
	t.logger.Info("Размер до очистки: %d строк", len(records)+readErrors)

	transformed := &models.TransformedData{
		SourceFile:  sourceFile,
		Rows:        make([]models.SalesRow, 0, len(records)),
		RowsRead:    len(records) + readErrors,
		RowsSkipped: readErrors,
	}

	for i, record := range records {
		row, ok := t.transformRecord(i, record)
		if !ok {
			transformed.RowsSkipped++
			continue
		}
		transformed.Rows = append(transformed.Rows, row)
	}

	t.logger.Info("Размер после очистки: %d строк (пропущено: %d)", len(transformed.Rows), transformed.RowsSkipped)
	t.logger.Info("Фаза Transform завершена. Длительность: %v", time.Since(startTime))

	return transformed
}

// transformRecord проверяет одну строку и выводит из даты календарные поля.
// Некорректная строка пропускается с предупреждением в логе.
func (t *Transformer) transformRecord(index int, record models.RawSalesRecord) (models.SalesRow, bool) {
	userID := strings.TrimSpace(record.UserID)
	price := strings.TrimSpace(record.Price)
	timestamp := strings.TrimSpace(record.Timestamp)

	// Аналог dropna: строки с пустыми значениями отбрасываются
	if userID == "" || price == "" || timestamp == "" {
		t.logger.Debug("Строка %d пропущена: пустые значения (user_id=%q, price=%q, timestamp=%q)",
			index, record.UserID, record.Price, record.Timestamp)
		return models.SalesRow{}, false
	}

	userKey, err := strconv.Atoi(userID)
	if err != nil {
		t.logger.Debug("Строка %d пропущена: некорректный user_id %q", index, userID)
		return models.SalesRow{}, false
	}

	date, err := time.Parse(timestampLayout, timestamp)
	if err != nil {
		t.logger.Debug("Строка %d пропущена: некорректная дата %q", index, timestamp)
		return models.SalesRow{}, false
	}

	priceValue, err := decimal.NewFromString(price)
	if err != nil {
		t.logger.Debug("Строка %d пропущена: нечисловая цена %q", index, price)
		return models.SalesRow{}, false
	}
	if priceValue.IsNegative() {
		t.logger.Debug("Строка %d пропущена: отрицательная цена %s", index, priceValue)
		return models.SalesRow{}, false
	}

	row := models.SalesRow{
		UserKey: userKey,
		Date:    date,
		// Цена хранится с точностью до двух знаков после запятой
		Price: priceValue.Round(2),
	}
	row.Year, row.Semester, row.Trimester, row.Month = DeriveCalendar(date)

	return row, true
}

// DeriveCalendar выводит из даты календарные поля временного измерения:
// год, полугодие (1-2), квартал (1-4) и месяц (1-12)
func DeriveCalendar(date time.Time) (year, semester, trimester, month int) {
	year = date.Year()
	month = int(date.Month())

	semester = 1
	if month > 6 {
		semester = 2
	}

	trimester = (month-1)/3 + 1

	return year, semester, trimester, month
}
