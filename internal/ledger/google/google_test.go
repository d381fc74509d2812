package google

import (
	"context"
	"testing"
)

func TestRowFromCells(t *testing.T) {
	cases := []struct {
		name  string
		cells []any
		date  string
		amt   string
		cat   string
	}{
		{
			name:  "full row",
			cells: []any{"2024-06-01", "Lunch", "15.50", "Food", "2024-06-01 12:00:00"},
			date:  "2024-06-01", amt: "15.50", cat: "Food",
		},
		{
			name:  "numeric amount cell",
			cells: []any{"2024-06-01", "Uber", 12.0, "Transport", ""},
			date:  "2024-06-01", amt: "12", cat: "Transport",
		},
		{
			name:  "short row padded",
			cells: []any{"2024-06-01", "Lunch"},
			date:  "2024-06-01", amt: "", cat: "",
		},
		{
			name:  "whitespace trimmed",
			cells: []any{" 2024-06-01 ", "Lunch", " 5 ", " Food "},
			date:  "2024-06-01", amt: "5", cat: "Food",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := rowFromCells(tc.cells)
			if row.Date != tc.date || row.Amount != tc.amt || row.Category != tc.cat {
				t.Fatalf("rowFromCells(%v) = %+v", tc.cells, row)
			}
		})
	}
}

func TestNewRequiresConfig(t *testing.T) {
	ctx := context.Background()
	if _, err := New(ctx, "", "Expenses", []byte("{}")); err == nil {
		t.Fatal("expected error for missing spreadsheet ID")
	}
	if _, err := New(ctx, "sheet-id", "Expenses", nil); err == nil {
		t.Fatal("expected error for missing credentials")
	}
}
