package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput возвращается при попытке рассчитать статистику по пустой выборке
var ErrEmptyInput = errors.New("пустая выборка: статистика не может быть рассчитана")

// DefaultPercentiles - процентили, рассчитываемые по умолчанию
var DefaultPercentiles = []float64{0.25, 0.50, 0.75, 0.90}

// Summary содержит описательную статистику числовой колонки
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // выборочное стандартное отклонение
	Min    float64
	Max    float64

	// Уровни процентилей в порядке запроса и их значения
	PercentileLevels []float64
	Percentiles      map[float64]float64
}

// Describe рассчитывает описательную статистику по числовой выборке:
// количество, среднее, выборочное стандартное отклонение, минимум, максимум
// и запрошенные процентили (эмпирический квантиль). Если уровни процентилей
// не переданы, используются DefaultPercentiles.
func Describe(values []float64, percentiles ...float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}
	for _, p := range percentiles {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("некорректный уровень процентиля %v: ожидается значение от 0 до 1", p)
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	summary := &Summary{
		Count:            len(values),
		Mean:             stat.Mean(values, nil),
		Min:              floats.Min(sorted),
		Max:              floats.Max(sorted),
		PercentileLevels: percentiles,
		Percentiles:      make(map[float64]float64, len(percentiles)),
	}

	// Для выборки из одного значения выборочное отклонение не определено
	if len(values) > 1 {
		summary.StdDev = stat.StdDev(values, nil)
	}

	for _, p := range percentiles {
		summary.Percentiles[p] = stat.Quantile(p, stat.Empirical, sorted, nil)
	}

	return summary, nil
}

// String форматирует статистику для вывода в лог
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "count: %d, mean: %.2f, std: %.2f, min: %.2f, max: %.2f",
		s.Count, s.Mean, s.StdDev, s.Min, s.Max)
	for _, p := range s.PercentileLevels {
		fmt.Fprintf(&b, ", p%g: %.2f", p*100, s.Percentiles[p])
	}
	return b.String()
}
