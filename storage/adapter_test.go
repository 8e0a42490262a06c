package storage

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tradelog/ledger"
)

type memBackend struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string][]byte{}}
}

func (m *memBackend) Get(key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBackend) Put(key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func (m *memBackend) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *memBackend) Close() error { return nil }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLoadFirstRunReturnsDefault(t *testing.T) {
	t.Parallel()

	a := NewAdapter(newMemBackend())
	snap, err := a.Load()
	assert.NoError(t, err)

	assert.Empty(t, snap.Trades)
	assert.True(t, snap.Settings.InitialBalance.Equal(dec("1000")))
	assert.True(t, snap.Settings.CurrentBalance.Equal(dec("1000")))
	assert.Equal(t, "", snap.Settings.Name)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Parallel()

	a := NewAdapter(newMemBackend())

	snap := ledger.Snapshot{
		Trades: map[string]ledger.Trade{
			"2024-01-10": {Date: "2024-01-10", Pnl: dec("150.50"), Notes: "good day"},
			"2024-01-11": {Date: "2024-01-11", Pnl: dec("-40")},
		},
		Settings: ledger.Settings{
			Name:           "Ana",
			InitialBalance: dec("2500"),
			CurrentBalance: dec("2610.50"),
		},
	}

	assert.NoError(t, a.Save(snap))

	got, err := a.Load()
	assert.NoError(t, err)

	assert.Len(t, got.Trades, 2)
	assert.Equal(t, "good day", got.Trades["2024-01-10"].Notes)
	assert.True(t, got.Trades["2024-01-10"].Pnl.Equal(dec("150.50")))
	assert.True(t, got.Trades["2024-01-11"].Pnl.Equal(dec("-40")))
	assert.Equal(t, "Ana", got.Settings.Name)
	assert.True(t, got.Settings.InitialBalance.Equal(dec("2500")))
	assert.True(t, got.Settings.CurrentBalance.Equal(dec("2610.50")))
}

func TestStoredLayout(t *testing.T) {
	t.Parallel()

	mem := newMemBackend()
	a := NewAdapter(mem)

	snap := ledger.Default()
	snap.Trades["2024-01-10"] = ledger.Trade{Date: "2024-01-10", Pnl: dec("150.50"), Notes: "good day"}
	assert.NoError(t, a.Save(snap))

	raw := string(mem.data[StorageKey])

	// Decimals are stored as bare numbers with the documented field names.
	assert.Contains(t, raw, `"pnl":150.5`)
	assert.Contains(t, raw, `"initialBalance":1000`)
	assert.Contains(t, raw, `"currentBalance":1000`)
	assert.Contains(t, raw, `"trades"`)
	assert.Contains(t, raw, `"settings"`)
	assert.NotContains(t, raw, `"pnl":"`)

	// Still valid JSON.
	var parsed map[string]any
	assert.NoError(t, json.Unmarshal(mem.data[StorageKey], &parsed))
}

func TestNotesOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	mem := newMemBackend()
	a := NewAdapter(mem)

	snap := ledger.Default()
	snap.Trades["2024-01-11"] = ledger.Trade{Date: "2024-01-11", Pnl: dec("-40")}
	assert.NoError(t, a.Save(snap))

	assert.NotContains(t, string(mem.data[StorageKey]), `"notes"`)
}

func TestLoadCorruptFallsBackAndQuarantines(t *testing.T) {
	t.Parallel()

	mem := newMemBackend()
	mem.data[StorageKey] = []byte(`{"trades": not json`)

	a := NewAdapter(mem)
	snap, err := a.Load()
	assert.Error(t, err)

	// Fail-soft: usable default snapshot despite the error.
	assert.Empty(t, snap.Trades)
	assert.True(t, snap.Settings.InitialBalance.Equal(dec("1000")))

	// Original value untouched, corrupt payload preserved aside.
	assert.Equal(t, []byte(`{"trades": not json`), mem.data[StorageKey])
	quarantined := 0
	for k, v := range mem.data {
		if strings.HasPrefix(k, StorageKey+".corrupt.") {
			quarantined++
			assert.Equal(t, []byte(`{"trades": not json`), v)
		}
	}
	assert.Equal(t, 1, quarantined)
}

func TestLoadReadErrorFallsBack(t *testing.T) {
	t.Parallel()

	mem := newMemBackend()
	mem.getErr = errors.New("storage unavailable")

	snap, err := NewAdapter(mem).Load()
	assert.Error(t, err)
	assert.True(t, snap.Settings.InitialBalance.Equal(dec("1000")))
}

func TestLoadNormalizesNilTrades(t *testing.T) {
	t.Parallel()

	mem := newMemBackend()
	mem.data[StorageKey] = []byte(`{"settings":{"name":"Ana","initialBalance":500,"currentBalance":500}}`)

	snap, err := NewAdapter(mem).Load()
	assert.NoError(t, err)
	assert.NotNil(t, snap.Trades)
	assert.Empty(t, snap.Trades)
	assert.Equal(t, "Ana", snap.Settings.Name)
}

func TestSaveErrorIsSurfacedNotFatal(t *testing.T) {
	t.Parallel()

	mem := newMemBackend()
	mem.putErr = errors.New("quota exceeded")

	err := NewAdapter(mem).Save(ledger.Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAdapterSatisfiesSaver(t *testing.T) {
	t.Parallel()

	var _ ledger.Saver = NewAdapter(newMemBackend())
}

func TestStoreWithAdapterEndToEnd(t *testing.T) {
	t.Parallel()

	mem := newMemBackend()
	a := NewAdapter(mem)

	first, err := a.Load()
	assert.NoError(t, err)

	store := ledger.NewStore(first, a)
	_, err = store.UpsertTrade("2024-01-10", ledger.Trade{Pnl: dec("150.50"), Notes: "good day"})
	assert.NoError(t, err)
	_, err = store.UpsertTrade("2024-01-11", ledger.Trade{Pnl: dec("-40")})
	assert.NoError(t, err)

	// A fresh adapter over the same backend sees the mutations.
	reloaded, err := NewAdapter(mem).Load()
	assert.NoError(t, err)
	assert.Len(t, reloaded.Trades, 2)
	assert.True(t, reloaded.Trades["2024-01-10"].Pnl.Equal(dec("150.50")))
}
