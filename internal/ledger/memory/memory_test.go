package memory

import (
	"context"
	"testing"
	"time"

	"tally/internal/core"
)

func TestAppendAndReadAll(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	rec := core.ExpenseRecord{
		Date:        core.DateOnly(now),
		Description: "Lunch",
		Amount:      core.Money{Cents: 1550},
		Category:    "Food",
		RecordedAt:  now,
	}
	if err := s.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	rows, err := s.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Date != "2024-06-01" || rows[0].Amount != "15.50" || rows[0].Category != "Food" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestAppendRejectsInvalidRecord(t *testing.T) {
	s := New()
	err := s.Append(context.Background(), core.ExpenseRecord{Description: "x"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if s.Len() != 0 {
		t.Fatalf("invalid record must not be stored, len = %d", s.Len())
	}
}

func TestReadAllReturnsCopy(t *testing.T) {
	s := NewSeeded([]core.Row{{Date: "2024-06-01", Amount: "1", Category: "A"}})
	rows, _ := s.ReadAll(context.Background())
	rows[0].Category = "mutated"
	again, _ := s.ReadAll(context.Background())
	if again[0].Category != "A" {
		t.Fatal("ReadAll must return a copy of the stored rows")
	}
}
