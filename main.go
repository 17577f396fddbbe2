package main

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/config"
	"github.com/LilVoxy/coursework_sales/extractors"
	"github.com/LilVoxy/coursework_sales/load"
	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/stats"
	"github.com/LilVoxy/coursework_sales/transform"
	"github.com/LilVoxy/coursework_sales/utils"
)

// ETLRunner связывает все фазы ETL-процесса: извлечение CSV-файлов,
// очистку и преобразование строк, загрузку в звездообразную схему
// и расчет статистики
type ETLRunner struct {
	config       config.ETLConfig
	db           *sqlx.DB
	logger       *utils.ETLLogger
	extractor    *extractors.Extractor
	transformer  *transform.Transformer
	loadManager  *load.LoadManager
	etlLogRepo   models.ETLLogRepository
	statsManager *stats.StatisticsManager
}

// NewETLRunner создает новый экземпляр ETLRunner
func NewETLRunner() (*ETLRunner, error) {
	// Получаем конфигурацию
	etlConfig, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Инициализируем логгер
	logger := utils.NewETLLogger(etlConfig.EnableDetailedLogging)
	logger.Info("Инициализация ETL Runner")

	// Подключаемся к базе данных
	db, err := config.ConnectDatabase(etlConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	// Создаем таблицы схемы, если они еще не существуют
	if err := load.EnsureSchema(db); err != nil {
		config.CloseDatabase(db, logger)
		return nil, fmt.Errorf("ошибка при создании схемы OLAP: %w", err)
	}

	// Инициализируем репозиторий журнала ETL
	etlLogRepo := models.NewMySQLETLLogRepository(db)
	if err := etlLogRepo.CreateETLLogTable(); err != nil {
		config.CloseDatabase(db, logger)
		return nil, fmt.Errorf("ошибка при создании таблицы журнала ETL: %w", err)
	}

	return &ETLRunner{
		config:       etlConfig,
		db:           db,
		logger:       logger,
		extractor:    extractors.NewExtractor(etlConfig.DataDir, logger),
		transformer:  transform.NewTransformer(logger),
		loadManager:  load.NewLoadManager(db, logger),
		etlLogRepo:   etlLogRepo,
		statsManager: stats.NewStatisticsManager(),
	}, nil
}

// Close закрывает соединение с базой данных
func (r *ETLRunner) Close() {
	r.logger.Info("Завершение работы ETL Runner")
	config.CloseDatabase(r.db, r.logger)
}

// ExecuteETL выполняет полный ETL процесс: по одному проходу на каждый
// CSV-файл каталога данных
func (r *ETLRunner) ExecuteETL() error {
	r.logger.LogETLStart()
	startTime := time.Now()

	// Создаем запись в журнале ETL
	logID, err := r.etlLogRepo.CreateLogEntry(startTime)
	if err != nil {
		r.logger.Error("Ошибка при создании записи в журнале ETL: %v", err)
		return fmt.Errorf("ошибка при создании записи в журнале ETL: %w", err)
	}

	runLog := &models.ETLRunLog{
		ID:        logID,
		StartTime: startTime,
		Status:    "in_progress",
	}

	// Получаем информацию о последнем успешном запуске
	lastRun, lrErr := r.etlLogRepo.GetLastSuccessfulRun()
	if lrErr != nil {
		r.logger.Error("Не удалось получить информацию о последнем успешном запуске: %v", lrErr)
		// Продолжаем выполнение: журнал не влияет на загрузку
	}
	if lastRun != nil {
		r.logger.Info("Последний успешный запуск: %v (файлов: %d, фактов: %d, пропущено строк: %d)",
			lastRun.EndTime, lastRun.FilesProcessed, lastRun.FactsLoaded, lastRun.RowsSkipped)
	}

	// Находим CSV-файлы в каталоге данных
	files, err := r.extractor.DetectCSVFiles()
	if err != nil {
		return r.failRun(runLog, fmt.Errorf("ошибка при поиске CSV-файлов: %w", err))
	}
	if len(files) == 0 {
		return r.failRun(runLog, fmt.Errorf("в каталоге %s не найдено CSV-файлов", r.config.DataDir))
	}

	// Обрабатываем каждый файл: Extract -> Transform -> Load -> статистика
	for _, file := range files {
		r.logger.Info("Обработка файла: %s", file)

		// 1. Фаза извлечения данных (Extract)
		records, readErrors, err := r.extractor.Extract(file)
		if err != nil {
			return r.failRun(runLog, fmt.Errorf("ошибка в фазе Extract: %w", err))
		}

		// 2. Фаза преобразования данных (Transform)
		transformedData := r.transformer.Transform(file, records, readErrors)

		// 3. Фаза загрузки данных (Load)
		result, err := r.loadManager.Load(transformedData)
		if err != nil {
			return r.failRun(runLog, fmt.Errorf("ошибка в фазе Load: %w", err))
		}

		// 4. Обновляем глобальную статистику и считаем статистику файла
		prices := make([]float64, 0, len(transformedData.Rows))
		for _, row := range transformedData.Rows {
			r.statsManager.Update(row.Price)
			prices = append(prices, row.Price.InexactFloat64())
		}

		summary, err := stats.Describe(prices)
		if err != nil {
			// Пустая выборка после очистки - ошибка уровня запуска
			return r.failRun(runLog, fmt.Errorf("статистика по файлу %s: %w", file, err))
		}

		r.logger.Info("Статистика колонки price в %s: %s", file, summary)
		r.logger.Info("Глобальная статистика колонки price: %s", r.statsManager.GetStatistics())

		runLog.FilesProcessed++
		runLog.RowsRead += transformedData.RowsRead
		runLog.RowsSkipped += transformedData.RowsSkipped
		runLog.FactsLoaded += result.FactsLoaded
	}

	// Статистика по таблице фактов на стороне базы данных
	dbStats, err := r.loadManager.FactStatistics()
	if err != nil {
		return r.failRun(runLog, fmt.Errorf("ошибка при получении статистики из БД: %w", err))
	}
	r.logger.Info("Статистика из БД: min: %s, max: %s, average: %s, record_count: %d",
		dbStats.Min, dbStats.Max, dbStats.Average, dbStats.RecordCount)

	// Обновляем запись в журнале с информацией об успешном выполнении
	if err := r.etlLogRepo.UpdateLogEntrySuccess(
		runLog.ID,
		time.Now(),
		runLog.FilesProcessed,
		runLog.RowsRead,
		runLog.RowsSkipped,
		runLog.FactsLoaded,
	); err != nil {
		r.logger.Error("Ошибка при обновлении записи в журнале ETL: %v", err)
	}

	r.logger.LogETLComplete(startTime, runLog.FilesProcessed, runLog.FactsLoaded, runLog.RowsSkipped)
	return nil
}

// failRun фиксирует ошибку запуска в журнале ETL и возвращает ее
func (r *ETLRunner) failRun(runLog *models.ETLRunLog, runErr error) error {
	r.logger.Error("%v", runErr)

	if err := r.etlLogRepo.UpdateLogEntryFailure(runLog.ID, time.Now(), runErr.Error()); err != nil {
		r.logger.Error("Ошибка при обновлении записи в журнале ETL: %v", err)
	}

	return runErr
}

func main() {
	runner, err := NewETLRunner()
	if err != nil {
		log.Fatalf("Ошибка при создании ETL Runner: %v", err)
	}

	if err := runner.ExecuteETL(); err != nil {
		runner.Close()
		log.Fatalf("Ошибка при выполнении ETL: %v", err)
	}

	runner.Close()
	log.Println("ETL Runner завершил работу")
}
