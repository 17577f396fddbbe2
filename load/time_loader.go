package load

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// TimeLoader отвечает за разрешение суррогатных ключей временного измерения
type TimeLoader struct {
	db     *sqlx.DB
	logger *utils.ETLLogger

	// Кэш суррогатных ключей в пределах одного запуска: дата (YYYY-MM-DD) -> id
	cache map[string]int
}

// NewTimeLoader создает новый экземпляр TimeLoader
func NewTimeLoader(db *sqlx.DB, logger *utils.ETLLogger) *TimeLoader {
	return &TimeLoader{
		db:     db,
		logger: logger,
		cache:  make(map[string]int),
	}
}

// Resolve возвращает суррогатный ключ dim_time для даты строки продажи.
// Если дата встретилась впервые, создается запись измерения с календарными
// полями, выведенными на фазе Transform.
func (l *TimeLoader) Resolve(row models.SalesRow) (id int, created bool, err error) {
	dateKey := row.Date.Format("2006-01-02")

	if id, ok := l.cache[dateKey]; ok {
		return id, false, nil
	}

	err = l.db.Get(&id, "SELECT id FROM dim_time WHERE date = ?", dateKey)
	if err == nil {
		l.cache[dateKey] = id
		return id, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("ошибка при поиске даты %s в dim_time: %w", dateKey, err)
	}

	// Дата встретилась впервые: создаем запись измерения
	dim := models.TimeDimension{
		Date:      row.Date,
		Year:      row.Year,
		Semester:  row.Semester,
		Trimester: row.Trimester,
		Month:     row.Month,
	}
	result, err := l.db.NamedExec(`
		INSERT INTO dim_time (date, year, semester, trimester, month)
		VALUES (:date, :year, :semester, :trimester, :month)`,
		dim,
	)
	if err != nil {
		return 0, false, fmt.Errorf("ошибка при вставке даты %s в dim_time: %w", dateKey, err)
	}

	insertID, err := result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("ошибка при получении ID новой записи dim_time: %w", err)
	}

	id = int(insertID)
	l.cache[dateKey] = id
	l.logger.Debug("Создана запись dim_time: date=%s, id=%d", dateKey, id)

	return id, true, nil
}
