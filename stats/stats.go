// stats/stats.go
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tradelog/ledger"
)

// Pure reductions over a ledger snapshot. Nothing here reads the clock or
// touches storage; "today" is always an explicit parameter.

// DailyChange returns the P&L recorded for today's key, or zero when no
// entry exists.
func DailyChange(trades map[string]ledger.Trade, today string) decimal.Decimal {
	t, ok := trades[today]
	if !ok {
		return decimal.Zero
	}
	return t.Pnl
}

// WinRate returns the percentage of recorded days with strictly positive
// P&L, in [0,100]. An empty ledger yields 0, never NaN.
func WinRate(trades map[string]ledger.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.Pnl.IsPositive() {
			wins++
		}
	}
	return float64(wins) / float64(len(trades)) * 100
}

// TotalPnl sums P&L over all entries. Zero for an empty ledger.
func TotalPnl(trades map[string]ledger.Trade) decimal.Decimal {
	total := decimal.Zero
	for _, t := range trades {
		total = total.Add(t.Pnl)
	}
	return total
}

// CurrentBalance is always recomputed, never read from the stored
// Settings.CurrentBalance field.
func CurrentBalance(s ledger.Settings, totalPnl decimal.Decimal) decimal.Decimal {
	return s.InitialBalance.Add(totalPnl)
}

// PercentageOfInitial returns total P&L as a percentage of the starting
// capital. A non-positive initial balance yields 0 rather than a division
// blow-up.
func PercentageOfInitial(totalPnl, initialBalance decimal.Decimal) decimal.Decimal {
	if !initialBalance.IsPositive() {
		return decimal.Zero
	}
	return totalPnl.Div(initialBalance).Mul(decimal.NewFromInt(100))
}

// DailyChangePercent relates today's change to the balance at the start of
// the day (current balance minus today's change). A non-positive previous
// balance yields 0.
func DailyChangePercent(dailyChange, currentBalance decimal.Decimal) decimal.Decimal {
	prev := currentBalance.Sub(dailyChange)
	if !prev.IsPositive() {
		return decimal.Zero
	}
	return dailyChange.Div(prev).Mul(decimal.NewFromInt(100))
}

// TradingDays is the number of recorded entries.
func TradingDays(trades map[string]ledger.Trade) int {
	return len(trades)
}

// Summary aggregates one calendar month of entries.
type Summary struct {
	Year     int
	Month    time.Month
	TotalPnl decimal.Decimal
	Days     int
	Wins     int
	Losses   int
	Flat     int
	WinRate  float64
	Trades   []ledger.Trade // the month's entries, sorted by date
}

// MonthSummary folds the entries whose key falls in the given year/month.
func MonthSummary(trades map[string]ledger.Trade, year int, month time.Month) Summary {
	sum := Summary{Year: year, Month: month, TotalPnl: decimal.Zero}

	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	for key, t := range trades {
		if len(key) < len(prefix) || key[:len(prefix)] != prefix {
			continue
		}
		sum.Days++
		sum.TotalPnl = sum.TotalPnl.Add(t.Pnl)
		switch {
		case t.Pnl.IsPositive():
			sum.Wins++
		case t.Pnl.IsNegative():
			sum.Losses++
		default:
			sum.Flat++
		}
		sum.Trades = append(sum.Trades, t)
	}
	sort.Slice(sum.Trades, func(i, j int) bool {
		return sum.Trades[i].Date < sum.Trades[j].Date
	})

	if sum.Days > 0 {
		sum.WinRate = float64(sum.Wins) / float64(sum.Days) * 100
	}
	return sum
}
