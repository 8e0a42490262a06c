// storage/adapter.go
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"tradelog/ledger"
	"tradelog/pkg/id"
)

// StorageKey is the fixed key the whole snapshot lives under.
const StorageKey = "trading-journal-data"

func init() {
	// The stored layout uses bare JSON numbers for pnl and balances, not the
	// decimal package's default quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Adapter bridges the in-memory snapshot to a Backend. Every Save is a full
// serialize-and-put of the entire snapshot; there is no batching, no deltas
// and no debounce.
type Adapter struct {
	backend Backend
	key     string
}

func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend, key: StorageKey}
}

// Load reads the stored snapshot. It never fails: a missing value, a read
// error or an unparseable payload all fall back to the default snapshot, and
// the returned error only describes what went wrong. A payload that exists
// but does not parse is quarantined under a ULID-suffixed key so it can be
// inspected later; the key itself is left alone until the next Save
// overwrites it.
func (a *Adapter) Load() (ledger.Snapshot, error) {
	raw, found, err := a.backend.Get(a.key)
	if err != nil {
		return ledger.Default(), fmt.Errorf("read %q: %w", a.key, err)
	}
	if !found {
		return ledger.Default(), nil
	}

	var snap ledger.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		_ = a.backend.Put(a.key+".corrupt."+id.New(), raw)
		return ledger.Default(), fmt.Errorf("parse %q: %w", a.key, err)
	}
	if snap.Trades == nil {
		snap.Trades = map[string]ledger.Trade{}
	}
	return snap, nil
}

// Save serializes the full snapshot and overwrites the stored value. The
// error is reported to the caller and is never fatal to the session.
func (a *Adapter) Save(snap ledger.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := a.backend.Put(a.key, data); err != nil {
		return fmt.Errorf("write %q: %w", a.key, err)
	}
	return nil
}
