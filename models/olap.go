package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserDimension представляет измерение пользователей в OLAP (таблица dim_user)
type UserDimension struct {
	ID      int `db:"id"`
	UserKey int `db:"user_key"` // натуральный ключ пользователя из CSV, уникален в пределах измерения
}

// TimeDimension представляет временное измерение в OLAP (таблица dim_time)
type TimeDimension struct {
	ID        int       `db:"id"`
	Date      time.Time `db:"date"` // календарная дата, уникальна в пределах измерения
	Year      int       `db:"year"`
	Semester  int       `db:"semester"`  // 1 - первое полугодие, 2 - второе
	Trimester int       `db:"trimester"` // квартал 1-4
	Month     int       `db:"month"`
}

// SalesFact представляет факт продажи в OLAP (таблица facts_sales)
type SalesFact struct {
	ID     int             `db:"id"`
	UserID int             `db:"user_id"` // суррогатный ключ dim_user
	TimeID int             `db:"time_id"` // суррогатный ключ dim_time
	Price  decimal.Decimal `db:"price"`   // цена продажи, неотрицательная, 2 знака после запятой
}

// FactSalesStats содержит агрегированную статистику по таблице facts_sales
type FactSalesStats struct {
	Min         decimal.Decimal `db:"min_price"`
	Max         decimal.Decimal `db:"max_price"`
	Average     decimal.Decimal `db:"avg_price"`
	RecordCount int             `db:"record_count"`
}
