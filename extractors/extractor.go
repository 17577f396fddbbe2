package extractors

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// Extractor координирует процесс извлечения данных из каталога с CSV-файлами
type Extractor struct {
	dataDir      string
	logger       *utils.ETLLogger
	csvExtractor *CSVExtractor
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(dataDir string, logger *utils.ETLLogger) *Extractor {
	return &Extractor{
		dataDir:      dataDir,
		logger:       logger,
		csvExtractor: NewCSVExtractor(logger),
	}
}

// DetectCSVFiles находит CSV-файлы в каталоге данных.
// Файлы возвращаются в детерминированном порядке; валидационные файлы
// (содержащие "validation" в имени) обрабатываются последними.
func (e *Extractor) DetectCSVFiles() ([]string, error) {
	entries, err := os.ReadDir(e.dataDir)
	if err != nil {
		return nil, fmt.Errorf("ошибка при доступе к каталогу данных %s: %w", e.dataDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".csv") {
			files = append(files, filepath.Join(e.dataDir, entry.Name()))
		}
	}

	if len(files) == 0 {
		e.logger.Debug("CSV-файлы в каталоге %s не найдены", e.dataDir)
		return nil, nil
	}

	// Обычные файлы по алфавиту, валидационные - в конец
	sort.Slice(files, func(i, j int) bool {
		vi := strings.Contains(filepath.Base(files[i]), "validation")
		vj := strings.Contains(filepath.Base(files[j]), "validation")
		if vi != vj {
			return !vi
		}
		return files[i] < files[j]
	})

	return files, nil
}

// Extract выполняет извлечение данных из одного CSV-файла
func (e *Extractor) Extract(path string) ([]models.RawSalesRecord, int, error) {
	startTime := time.Now()
	e.logger.LogExtractStart(path)

	records, readErrors, err := e.csvExtractor.ExtractFile(path)
	if err != nil {
		e.logger.Error("Ошибка при извлечении данных из %s: %v", path, err)
		return nil, 0, fmt.Errorf("ошибка извлечения данных: %w", err)
	}

	e.logger.LogExtractComplete(path, len(records), readErrors, time.Since(startTime))

	return records, readErrors, nil
}
