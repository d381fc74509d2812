package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tally/internal/core"
	"tally/internal/storage"
)

func newTestService(t *testing.T) *LedgerService {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	svc := NewLedgerService(repo, nil)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestLedgerService_AppendWithoutAMQP(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec := core.ExpenseRecord{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "Lunch",
		Amount:      core.Money{Cents: 1550},
		Category:    "Food",
		RecordedAt:  time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
	}

	// Publishing is skipped when no AMQP client is configured; the
	// write must still succeed.
	if err := svc.Append(ctx, rec); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	rows, err := svc.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ReadAll() returned %d rows, want 1", len(rows))
	}
	if rows[0].Description != "Lunch" || rows[0].Amount != "15.50" {
		t.Errorf("row = %+v, want Lunch / 15.50", rows[0])
	}
}

func TestLedgerService_AppendInvalidRecord(t *testing.T) {
	svc := newTestService(t)

	rec := core.ExpenseRecord{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: "",
		Amount:      core.Money{Cents: 100},
		Category:    "Food",
		RecordedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := svc.Append(context.Background(), rec); err == nil {
		t.Fatal("Append() should reject an invalid record")
	}
}

func TestLedgerService_CloseNilComponents(t *testing.T) {
	svc := &LedgerService{}
	if err := svc.Close(); err != nil {
		t.Fatalf("Close should not return error with nil components: %v", err)
	}
}
