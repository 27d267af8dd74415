// Package ledger implements the budget ledger operations: reference and
// budget catalogs, the income and expense ledgers with their recurrence
// expansion, the card sub-ledger and the aggregation views.
package ledger

import (
	"sync"

	"github.com/orcamento-familiar/backend/pkg/models"
	"github.com/orcamento-familiar/backend/pkg/storage"
)

// Ledger executes every operation as one load-validate-mutate-save unit
// inside a process-wide critical section, so the net effect of concurrent
// operations equals some serial ordering of them.
type Ledger struct {
	mu    sync.Mutex
	store *storage.Store
}

// New returns a Ledger backed by the given store.
func New(store *storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Close flushes the underlying store.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Close()
}

// update runs fn on the borrowed snapshot and persists it when fn
// succeeds. Validation in fn is front-loaded: the first failing check
// aborts before any entity is appended. Identifier allocations made
// before a failure are not rolled back, the counters keep their gaps.
func (l *Ledger) update(fn func(*models.Snapshot) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := fn(l.store.Load()); err != nil {
		return err
	}
	return l.store.Save()
}

// view runs fn on the borrowed snapshot without persisting anything.
// Reads take the same critical section since they borrow the same state.
func (l *Ledger) view(fn func(*models.Snapshot) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.store.Load())
}
