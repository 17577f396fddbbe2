package extractors

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// CSVExtractor отвечает за чтение строк продаж из CSV-файла
type CSVExtractor struct {
	logger *utils.ETLLogger
}

// NewCSVExtractor создает новый экземпляр CSVExtractor
func NewCSVExtractor(logger *utils.ETLLogger) *CSVExtractor {
	return &CSVExtractor{
		logger: logger,
	}
}

// ExtractFile читает CSV-файл и возвращает необработанные записи продаж.
// Структурно битые строки (неверное количество полей) пропускаются и
// подсчитываются; ошибка открытия или чтения файла прерывает запуск.
func (e *CSVExtractor) ExtractFile(path string) ([]models.RawSalesRecord, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при открытии файла %s: %w", path, err)
	}
	defer file.Close()

	records, readErrors, err := e.extract(file)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при чтении файла %s: %w", path, err)
	}

	return records, readErrors, nil
}

// extract декодирует CSV-поток в записи продаж по заголовку файла
func (e *CSVExtractor) extract(r io.Reader) ([]models.RawSalesRecord, int, error) {
	csvReader := csv.NewReader(r)

	dec, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при разборе заголовка CSV: %w", err)
	}

	var records []models.RawSalesRecord
	readErrors := 0

	for {
		var record models.RawSalesRecord
		err := dec.Decode(&record)
		if err == io.EOF {
			break
		}
		if err != nil {
			// Строка с неверным количеством полей: пропускаем и продолжаем чтение
			e.logger.Debug("Пропущена структурно некорректная строка CSV: %v", err)
			readErrors++
			continue
		}

		records = append(records, record)
	}

	return records, readErrors, nil
}
