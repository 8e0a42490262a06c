// ledger/store.go
package ledger

// Saver persists a snapshot. The storage adapter satisfies this; tests use
// in-memory fakes.
type Saver interface {
	Save(Snapshot) error
}

// Store owns the canonical in-memory snapshot and is the only sanctioned way
// to mutate it. Every successful mutation is handed to the Saver before the
// call returns, then subscribers are notified with the new snapshot.
//
// Store is not safe for concurrent use: the application is single-threaded
// and there is exactly one writer.
type Store struct {
	current Snapshot
	saver   Saver
	subs    []func(Snapshot)
}

// NewStore builds a store around an initial snapshot, normally the adapter's
// Load() result. A nil saver disables persistence (useful in tests).
func NewStore(snap Snapshot, saver Saver) *Store {
	s := snap.Clone()
	if s.Trades == nil {
		s.Trades = map[string]Trade{}
	}
	return &Store{current: s, saver: saver}
}

// Snapshot returns a copy of the current state. Mutating the returned value
// never affects the store.
func (s *Store) Snapshot() Snapshot {
	return s.current.Clone()
}

// Subscribe registers a change callback. Callbacks run synchronously after
// each mutation and its save attempt, in registration order.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.subs = append(s.subs, fn)
}

// UpsertTrade inserts or overwrites the entry for date, or removes it when
// the candidate is the deletion sentinel (zero P&L, no notes). Last write
// wins; no merging.
//
// The returned snapshot reflects the mutation regardless of the error: a
// non-nil error means only that persisting the new state failed, and the
// in-memory state stays authoritative for the session.
func (s *Store) UpsertTrade(date string, t Trade) (Snapshot, error) {
	next := s.current.Clone()
	if t.Empty() {
		delete(next.Trades, date)
	} else {
		t.Date = date
		next.Trades[date] = t
	}
	return s.commit(next)
}

// RemoveTrade removes the entry for date by submitting the deletion
// sentinel. Removing a date with no entry is a no-op.
func (s *Store) RemoveTrade(date string) (Snapshot, error) {
	return s.UpsertTrade(date, Trade{Date: date})
}

// ReplaceSettings swaps the settings wholesale. No field validation happens
// here; that belongs to the presentation layer.
func (s *Store) ReplaceSettings(settings Settings) (Snapshot, error) {
	next := s.current.Clone()
	next.Settings = settings
	return s.commit(next)
}

func (s *Store) commit(next Snapshot) (Snapshot, error) {
	s.current = next

	var err error
	if s.saver != nil {
		err = s.saver.Save(next.Clone())
	}
	for _, fn := range s.subs {
		fn(next.Clone())
	}
	return next.Clone(), err
}
