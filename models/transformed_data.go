package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRow представляет очищенную строку продажи после фазы Transform
type SalesRow struct {
	UserKey   int
	Date      time.Time
	Year      int
	Semester  int
	Trimester int
	Month     int
	Price     decimal.Decimal
}

// TransformedData содержит трансформированные данные одного CSV-файла
// для загрузки в OLAP
type TransformedData struct {
	SourceFile string

	// Очищенные строки продаж
	Rows []SalesRow

	// Счетчики фазы очистки
	RowsRead    int // всего прочитано строк (включая ошибки чтения CSV)
	RowsSkipped int // отброшено некорректных строк
}

// LoadResult содержит итоги фазы Load для одного файла
type LoadResult struct {
	FactsLoaded  int
	UsersCreated int // новых записей в dim_user
	TimesCreated int // новых записей в dim_time
}
