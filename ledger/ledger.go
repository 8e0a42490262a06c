// ledger/ledger.go
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is one calendar day's trading outcome. Date doubles as the map key
// in Snapshot.Trades and is always a YYYY-MM-DD string.
type Trade struct {
	Date  string          `json:"date"`
	Pnl   decimal.Decimal `json:"pnl"`
	Notes string          `json:"notes,omitempty"`
}

// Empty reports whether the trade is the deletion sentinel: zero P&L and no
// notes. Submitting such a trade removes the day's entry instead of storing
// a no-op record.
func (t Trade) Empty() bool {
	return t.Pnl.IsZero() && t.Notes == ""
}

// Settings is the trading account configuration.
//
// CurrentBalance is carried through load/save for compatibility with older
// stored snapshots but is never read by the statistics engine; the displayed
// balance is always recomputed as InitialBalance + total P&L.
type Settings struct {
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// Snapshot is the whole persisted application state: the ledger plus the
// account settings. It is loaded once at startup and written back wholesale
// on every mutation.
type Snapshot struct {
	Trades   map[string]Trade `json:"trades"`
	Settings Settings         `json:"settings"`
}

// Default returns the first-run snapshot: an empty ledger and a 1000-unit
// starting balance.
func Default() Snapshot {
	start := decimal.NewFromInt(1000)
	return Snapshot{
		Trades: map[string]Trade{},
		Settings: Settings{
			Name:           "",
			InitialBalance: start,
			CurrentBalance: start,
		},
	}
}

// Clone returns a deep copy of the snapshot. Trade values are plain data, so
// copying the map is enough.
func (s Snapshot) Clone() Snapshot {
	trades := make(map[string]Trade, len(s.Trades))
	for k, v := range s.Trades {
		trades[k] = v
	}
	return Snapshot{Trades: trades, Settings: s.Settings}
}

// KeyLayout is the date-key format shared by ledger writes and "today"
// lookups.
const KeyLayout = "2006-01-02"

// Key derives the ledger key for t using t's own location. Callers must pick
// one location (the CLI uses local time) and use it for both writes and
// lookups, otherwise entries near midnight land on the wrong day.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}
