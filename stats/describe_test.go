package stats

import (
	"errors"
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{10, 20, 30})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if s.Count != 3 {
		t.Errorf("Count = %d, ожидалось 3", s.Count)
	}
	if s.Mean != 20 {
		t.Errorf("Mean = %v, ожидалось 20", s.Mean)
	}
	// Выборочное стандартное отклонение для [10, 20, 30]
	if math.Abs(s.StdDev-10) > 1e-9 {
		t.Errorf("StdDev = %v, ожидалось 10", s.StdDev)
	}
	if s.Min != 10 || s.Max != 30 {
		t.Errorf("Min/Max = %v/%v, ожидалось 10/30", s.Min, s.Max)
	}
	if s.Percentiles[0.50] != 20 {
		t.Errorf("P50 = %v, ожидалось 20", s.Percentiles[0.50])
	}
}

func TestDescribeEmpiricalPercentiles(t *testing.T) {
	s, err := Describe([]float64{30, 10, 20}, 0.25, 0.50, 0.75, 0.90)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	// Эмпирический квантиль: наименьшее значение выборки,
	// накопленная доля которого не меньше запрошенного уровня
	want := map[float64]float64{
		0.25: 10,
		0.50: 20,
		0.75: 30,
		0.90: 30,
	}
	for p, w := range want {
		if s.Percentiles[p] != w {
			t.Errorf("P%g = %v, ожидалось %v", p*100, s.Percentiles[p], w)
		}
	}
}

func TestDescribeSingleValue(t *testing.T) {
	s, err := Describe([]float64{42.5})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if s.Count != 1 || s.Mean != 42.5 || s.Min != 42.5 || s.Max != 42.5 {
		t.Errorf("статистика одного значения: %+v", s)
	}
	if s.StdDev != 0 {
		t.Errorf("StdDev = %v, ожидалось 0 для выборки из одного значения", s.StdDev)
	}
}

func TestDescribeEmptyInput(t *testing.T) {
	_, err := Describe(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("ожидалась ошибка ErrEmptyInput, получено: %v", err)
	}
}

func TestDescribeInvalidPercentile(t *testing.T) {
	_, err := Describe([]float64{1, 2, 3}, 1.5)
	if err == nil {
		t.Error("ожидалась ошибка для уровня процентиля вне диапазона [0, 1]")
	}
}
