package analytics

import (
	"time"

	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/shopspring/decimal"
)

// MonthLabelLayout renders a month bucket as e.g. "Jan 2025".
const MonthLabelLayout = "Jan 2006"

// MonthNet is the signed net of one calendar month.
type MonthNet struct {
	Label string
	Net   decimal.Decimal
	Year  int
	Month time.Month
}

// MonthlySeries returns the trailing n months ending at the current month.
func MonthlySeries(txns []model.Transaction, n int) []MonthNet {
	return MonthlySeriesAt(txns, n, time.Now())
}

// MonthlySeriesAt returns exactly n contiguous months, oldest first, ending at
// the month containing now. Transactions without a date fall into the month
// of their creation instant. Dates are compared in now's location.
func MonthlySeriesAt(txns []model.Transaction, n int, now time.Time) []MonthNet {
	if n <= 0 {
		return []MonthNet{}
	}

	loc := now.Location()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -(n - 1), 0)

	series := make([]MonthNet, n)
	type key struct {
		year  int
		month time.Month
	}
	index := make(map[key]int, n)
	for i := range series {
		m := start.AddDate(0, i, 0)
		series[i] = MonthNet{
			Label: m.Format(MonthLabelLayout),
			Net:   decimal.Zero,
			Year:  m.Year(),
			Month: m.Month(),
		}
		index[key{m.Year(), m.Month()}] = i
	}

	for _, t := range txns {
		d := t.EffectiveDate().In(loc)
		if i, ok := index[key{d.Year(), d.Month()}]; ok {
			series[i].Net = series[i].Net.Add(t.Amount)
		}
	}
	return series
}
