// Package ledger defines the ports to the append-only expense store.
package ledger

import (
	"context"

	"tally/internal/core"
)

type (
	// Appender appends a single record. One attempt per call, no retries;
	// a failed append surfaces as an error for the caller to report.
	Appender interface {
		Append(ctx context.Context, rec core.ExpenseRecord) error
	}

	// Reader returns every stored row as loosely-typed text. Zero rows is
	// a valid result and indistinguishable from nothing recorded.
	Reader interface {
		ReadAll(ctx context.Context) ([]core.Row, error)
	}

	Ledger interface {
		Appender
		Reader
	}
)
