package load

import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema создает таблицы звездообразной схемы, если они не существуют.
// Скрипт идемпотентен и выполняется при каждом запуске ETL.
// Для выполнения нескольких DDL-операторов одним запросом подключение
// должно быть открыто с параметром multiStatements=true.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("ошибка при создании схемы OLAP: %w", err)
	}

	return nil
}
