package load

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/utils"
)

func newTestLogger(t *testing.T) *utils.ETLLogger {
	t.Helper()
	chdir(t, t.TempDir()) // лог-файл создается в текущем каталоге
	return utils.NewETLLogger(false)
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("не удалось создать mock базы данных: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserLoaderResolveInsertsOnce(t *testing.T) {
	logger := newTestLogger(t)
	db, mock := newMockDB(t)
	l := NewUserLoader(db, logger)

	// Первый вызов: ключа нет ни в кэше, ни в базе - выполняется вставка
	mock.ExpectQuery("SELECT id FROM dim_user").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO dim_user").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, created, err := l.Resolve(42)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if id != 7 || !created {
		t.Errorf("Resolve(42) = (%d, %v), ожидалось (7, true)", id, created)
	}

	// Повторный вызов обслуживается из кэша: ни SELECT, ни INSERT
	id2, created2, err := l.Resolve(42)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if id2 != id || created2 {
		t.Errorf("повторный Resolve(42) = (%d, %v), ожидалось (%d, false)", id2, created2, id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("невыполненные ожидания: %v", err)
	}
}

func TestUserLoaderResolveExistingRow(t *testing.T) {
	logger := newTestLogger(t)
	db, mock := newMockDB(t)

	// Повторный запуск: запись уже есть в базе, вставка не выполняется
	l := NewUserLoader(db, logger)

	mock.ExpectQuery("SELECT id FROM dim_user").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	id, created, err := l.Resolve(42)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if id != 5 || created {
		t.Errorf("Resolve(42) = (%d, %v), ожидалось (5, false)", id, created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("невыполненные ожидания: %v", err)
	}
}
