// Package worker replays locally stored expenses into the sheet ledger.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/amqp"
	"tally/internal/ledger"
	"tally/internal/storage"
)

// SyncWorker copies expenses from SQLite into the sheet ledger, driven
// by AMQP messages with a periodic drain as the safety net for rows the
// broker never delivered.
type SyncWorker struct {
	storage *storage.SQLiteRepository
	sheets  ledger.Appender
}

func NewSyncWorker(storage *storage.SQLiteRepository, sheets ledger.Appender) *SyncWorker {
	return &SyncWorker{
		storage: storage,
		sheets:  sheets,
	}
}

// HandleSyncMessage replays one expense identified by an AMQP message.
// The returned error causes the delivery to be requeued.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.RecordSyncMessage) error {
	return w.syncExpense(ctx, msg.ID)
}

// DrainPending replays up to batchSize expenses still marked pending
// and reports how many were synced. A single failing row is flagged and
// skipped so the rest of the batch still goes through.
func (w *SyncWorker) DrainPending(ctx context.Context, batchSize int) (int, error) {
	pending, err := w.storage.GetPendingSync(ctx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("get pending expenses: %w", err)
	}

	synced := 0
	for _, item := range pending {
		if err := ctx.Err(); err != nil {
			return synced, err
		}
		if err := w.syncExpense(ctx, item.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to sync pending expense",
				"id", item.ID, "error", err)
			continue
		}
		synced++
	}

	if synced > 0 {
		slog.InfoContext(ctx, "Drained pending expenses",
			"synced", synced, "pending", len(pending))
	}
	return synced, nil
}

// RetryErrors requeues expenses whose earlier replay failed.
func (w *SyncWorker) RetryErrors(ctx context.Context) error {
	return w.storage.ResetSyncErrors(ctx)
}

func (w *SyncWorker) syncExpense(ctx context.Context, id int64) error {
	rec, err := w.storage.GetExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("get expense %d: %w", id, err)
	}

	if err := w.sheets.Append(ctx, rec); err != nil {
		if markErr := w.storage.MarkSyncError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark expense sync error",
				"id", id, "error", markErr)
		}
		return fmt.Errorf("append to sheet: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, id); err != nil {
		// The append succeeded; a failed status update just means the
		// row may be replayed once more.
		slog.WarnContext(ctx, "Failed to mark expense as synced",
			"id", id, "error", err)
	}

	slog.InfoContext(ctx, "Expense synced to sheet", "id", id)
	return nil
}
