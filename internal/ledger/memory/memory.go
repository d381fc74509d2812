// Package memory is an in-process ledger used as the default backend and
// as a test double.
package memory

import (
	"context"
	"sync"

	"tally/internal/core"
	"tally/internal/ledger"
)

type Store struct {
	mu   sync.Mutex
	rows []core.Row
}

var (
	_ ledger.Appender = (*Store)(nil)
	_ ledger.Reader   = (*Store)(nil)
)

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with rows, useful in tests.
func NewSeeded(rows []core.Row) *Store {
	return &Store{rows: append([]core.Row(nil), rows...)}
}

func (s *Store) Append(_ context.Context, rec core.ExpenseRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rec.ToRow())
	return nil
}

func (s *Store) ReadAll(_ context.Context) ([]core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Row(nil), s.rows...), nil
}

// Len reports the number of stored rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
