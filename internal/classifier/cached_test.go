package classifier

import (
	"context"
	"errors"
	"testing"
)

type countingCategorizer struct {
	calls    int
	category string
	err      error
}

func (c *countingCategorizer) Categorize(ctx context.Context, description string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.category, nil
}

func TestCachedCategorizeHitsOnce(t *testing.T) {
	inner := &countingCategorizer{category: "Food"}
	cached := NewCached(inner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		category, err := cached.Categorize(ctx, "Lunch")
		if err != nil {
			t.Fatalf("Categorize() error = %v", err)
		}
		if category != "Food" {
			t.Fatalf("category = %q, want Food", category)
		}
	}

	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestCachedNormalizesKey(t *testing.T) {
	inner := &countingCategorizer{category: "Food"}
	cached := NewCached(inner)
	ctx := context.Background()

	cached.Categorize(ctx, "Lunch")
	cached.Categorize(ctx, "  lunch  ")
	cached.Categorize(ctx, "LUNCH")

	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1 (case and whitespace normalized)", inner.calls)
	}
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	inner := &countingCategorizer{err: errors.New("model down")}
	cached := NewCached(inner)
	ctx := context.Background()

	if _, err := cached.Categorize(ctx, "Lunch"); err == nil {
		t.Fatal("Categorize() should propagate inner error")
	}

	inner.err = nil
	inner.category = "Food"
	category, err := cached.Categorize(ctx, "Lunch")
	if err != nil {
		t.Fatalf("Categorize() error = %v", err)
	}
	if category != "Food" {
		t.Errorf("category = %q, want Food", category)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2 (errors not cached)", inner.calls)
	}
}
