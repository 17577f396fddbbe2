package transform

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

func newTestTransformer(t *testing.T) *Transformer {
	t.Helper()
	chdir(t, t.TempDir()) // лог-файл создается в текущем каталоге
	return NewTransformer(utils.NewETLLogger(false))
}

func TestTransformValidRow(t *testing.T) {
	tr := newTestTransformer(t)

	records := []models.RawSalesRecord{
		{UserID: "42", Price: "19.99", Timestamp: "07/15/2023"},
	}

	data := tr.Transform("sales.csv", records, 0)

	if len(data.Rows) != 1 {
		t.Fatalf("ожидалась 1 строка, получено %d", len(data.Rows))
	}

	row := data.Rows[0]
	if row.UserKey != 42 {
		t.Errorf("UserKey = %d, ожидалось 42", row.UserKey)
	}
	wantDate := time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)
	if !row.Date.Equal(wantDate) {
		t.Errorf("Date = %v, ожидалось %v", row.Date, wantDate)
	}
	if row.Year != 2023 || row.Semester != 2 || row.Trimester != 3 || row.Month != 7 {
		t.Errorf("календарные поля = (%d, %d, %d, %d), ожидалось (2023, 2, 3, 7)",
			row.Year, row.Semester, row.Trimester, row.Month)
	}
	if !row.Price.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("Price = %s, ожидалось 19.99", row.Price)
	}
}

func TestTransformRoundsPriceToTwoDecimals(t *testing.T) {
	tr := newTestTransformer(t)

	records := []models.RawSalesRecord{
		{UserID: "1", Price: "10.456", Timestamp: "01/02/2024"},
	}

	data := tr.Transform("sales.csv", records, 0)

	if len(data.Rows) != 1 {
		t.Fatalf("ожидалась 1 строка, получено %d", len(data.Rows))
	}
	if !data.Rows[0].Price.Equal(decimal.RequireFromString("10.46")) {
		t.Errorf("Price = %s, ожидалось 10.46", data.Rows[0].Price)
	}
}

func TestTransformSkipsMalformedRows(t *testing.T) {
	tr := newTestTransformer(t)

	tests := []struct {
		name   string
		record models.RawSalesRecord
	}{
		{"пустой user_id", models.RawSalesRecord{UserID: "", Price: "10.00", Timestamp: "01/02/2024"}},
		{"пустая цена", models.RawSalesRecord{UserID: "1", Price: "", Timestamp: "01/02/2024"}},
		{"пустая дата", models.RawSalesRecord{UserID: "1", Price: "10.00", Timestamp: ""}},
		{"нечисловой user_id", models.RawSalesRecord{UserID: "abc", Price: "10.00", Timestamp: "01/02/2024"}},
		{"некорректная дата", models.RawSalesRecord{UserID: "1", Price: "10.00", Timestamp: "2024-01-02"}},
		{"нечисловая цена", models.RawSalesRecord{UserID: "1", Price: "ten", Timestamp: "01/02/2024"}},
		{"отрицательная цена", models.RawSalesRecord{UserID: "1", Price: "-5.00", Timestamp: "01/02/2024"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := tr.Transform("sales.csv", []models.RawSalesRecord{tc.record}, 0)

			if len(data.Rows) != 0 {
				t.Errorf("строка не была отброшена: %+v", data.Rows)
			}
			if data.RowsSkipped != 1 {
				t.Errorf("RowsSkipped = %d, ожидалось 1", data.RowsSkipped)
			}
		})
	}
}

func TestTransformCounters(t *testing.T) {
	tr := newTestTransformer(t)

	records := []models.RawSalesRecord{
		{UserID: "1", Price: "10.00", Timestamp: "01/02/2024"},
		{UserID: "2", Price: "oops", Timestamp: "01/02/2024"},
		{UserID: "3", Price: "30.00", Timestamp: "01/03/2024"},
	}

	// Две строки были отброшены еще на фазе Extract
	data := tr.Transform("sales.csv", records, 2)

	if data.RowsRead != 5 {
		t.Errorf("RowsRead = %d, ожидалось 5", data.RowsRead)
	}
	if data.RowsSkipped != 3 {
		t.Errorf("RowsSkipped = %d, ожидалось 3", data.RowsSkipped)
	}
	if len(data.Rows) != 2 {
		t.Errorf("len(Rows) = %d, ожидалось 2", len(data.Rows))
	}
}

func TestDeriveCalendar(t *testing.T) {
	tests := []struct {
		date      time.Time
		year      int
		semester  int
		trimester int
		month     int
	}{
		{time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), 2023, 1, 1, 1},
		{time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), 2023, 1, 1, 3},
		{time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), 2023, 1, 2, 4},
		{time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), 2023, 1, 2, 6},
		{time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), 2023, 2, 3, 7},
		{time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), 2023, 2, 4, 10},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 2023, 2, 4, 12},
	}

	for _, tc := range tests {
		year, semester, trimester, month := DeriveCalendar(tc.date)
		if year != tc.year || semester != tc.semester || trimester != tc.trimester || month != tc.month {
			t.Errorf("DeriveCalendar(%v) = (%d, %d, %d, %d), ожидалось (%d, %d, %d, %d)",
				tc.date, year, semester, trimester, month,
				tc.year, tc.semester, tc.trimester, tc.month)
		}
	}
}

// chdir switches the working directory for the duration of the test
// (replacement for t.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
