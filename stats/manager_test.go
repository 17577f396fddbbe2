package stats

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatisticsManager(t *testing.T) {
	m := NewStatisticsManager()

	for _, v := range []string{"10.00", "20.00", "30.00"} {
		m.Update(decimal.RequireFromString(v))
	}

	s := m.GetStatistics()

	if s.RecordCount != 3 {
		t.Errorf("RecordCount = %d, ожидалось 3", s.RecordCount)
	}
	if !s.Min.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("Min = %s, ожидалось 10.00", s.Min)
	}
	if !s.Max.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("Max = %s, ожидалось 30.00", s.Max)
	}
	if !s.Average.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("Average = %s, ожидалось 20.00", s.Average)
	}
}

func TestStatisticsManagerAverageRounding(t *testing.T) {
	m := NewStatisticsManager()

	for _, v := range []string{"10.00", "10.00", "10.01"} {
		m.Update(decimal.RequireFromString(v))
	}

	// 30.01 / 3 = 10.00333..., округляется до 10.00
	s := m.GetStatistics()
	if !s.Average.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("Average = %s, ожидалось 10.00", s.Average)
	}
}

func TestStatisticsManagerEmpty(t *testing.T) {
	m := NewStatisticsManager()

	s := m.GetStatistics()
	if s.RecordCount != 0 {
		t.Errorf("RecordCount = %d, ожидалось 0", s.RecordCount)
	}
	if !s.Min.IsZero() || !s.Max.IsZero() || !s.Average.IsZero() {
		t.Errorf("пустой снимок содержит ненулевые значения: %+v", s)
	}
}
