package models

// RawSalesRecord представляет необработанную строку CSV-файла с продажами.
// Все поля читаются как строки: разбор значений и отбраковка некорректных
// строк выполняются на фазе Transform.
type RawSalesRecord struct {
	UserID    string `csv:"user_id"`
	Price     string `csv:"price"`
	Timestamp string `csv:"timestamp"`
}
