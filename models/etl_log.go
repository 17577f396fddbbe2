package models

import (
	"time"
)

// ETLRunLog представляет запись о запуске ETL процесса
type ETLRunLog struct {
	ID                   int       `db:"id" json:"id"`
	StartTime            time.Time `db:"start_time" json:"start_time"`
	EndTime              time.Time `db:"end_time" json:"end_time"`
	Status               string    `db:"status" json:"status"` // "success", "failed", "in_progress"
	FilesProcessed       int       `db:"files_processed" json:"files_processed"`
	RowsRead             int       `db:"rows_read" json:"rows_read"`
	RowsSkipped          int       `db:"rows_skipped" json:"rows_skipped"`
	FactsLoaded          int       `db:"facts_loaded" json:"facts_loaded"`
	ErrorMessage         string    `db:"error_message" json:"error_message,omitempty"`
	ExecutionTimeSeconds float64   `db:"execution_time_seconds" json:"execution_time_seconds"`
}

// ETLLogRepository представляет репозиторий для работы с журналом запусков ETL
type ETLLogRepository interface {
	// CreateETLLogTable создает таблицу журнала, если она не существует
	CreateETLLogTable() error

	// CreateLogEntry создает новую запись о запуске ETL
	CreateLogEntry(startTime time.Time) (int, error)

	// UpdateLogEntrySuccess обновляет запись при успешном завершении ETL
	UpdateLogEntrySuccess(id int, endTime time.Time, filesProcessed, rowsRead, rowsSkipped, factsLoaded int) error

	// UpdateLogEntryFailure обновляет запись при неудачном завершении ETL
	UpdateLogEntryFailure(id int, endTime time.Time, errorMessage string) error

	// GetLastSuccessfulRun получает информацию о последнем успешном запуске ETL
	GetLastSuccessfulRun() (*ETLRunLog, error)
}
