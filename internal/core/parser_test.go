package core

import "testing"

func TestParseExpense(t *testing.T) {
	cases := []struct {
		in    string
		desc  string
		cents int64
		ok    bool
	}{
		{"Lunch 15.50", "Lunch", 1550, true},
		{"Coffee 5", "Coffee", 500, true},
		{"5 Coffee", "Coffee", 500, true},
		{"15 Lunch today", "Lunch today", 1500, true},
		{"  Dinner with friends   42.00  ", "Dinner with friends", 4200, true},
		{"5 5", "5", 500, true}, // trailing form wins
		{"Uber 12", "Uber", 1200, true},
		{"12", "", 0, false}, // amount with no description
		{"15.50", "", 0, false},
		{"", "", 0, false},
		{"hello", "", 0, false},
		{"Lunch $15.50", "", 0, false}, // currency symbol rejects the token
		{"Lunch -5", "", 0, false},     // sign never matches the token
		{"Lunch 1.2.3", "", 0, false},
		{"Lunch .", "", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseExpense(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", tc.in, err)
			}
			if got.Description != tc.desc || got.Amount.Cents != tc.cents {
				t.Fatalf("%q: got (%q, %d), want (%q, %d)", tc.in, got.Description, got.Amount.Cents, tc.desc, tc.cents)
			}
		} else if err == nil {
			t.Fatalf("%q: expected ErrNoMatch, got %+v", tc.in, got)
		}
	}
}

func TestParseExpenseIsPure(t *testing.T) {
	a, err1 := ParseExpense("Groceries 33.40")
	b, err2 := ParseExpense("Groceries 33.40")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if a != b {
		t.Fatalf("same input produced different results: %+v vs %+v", a, b)
	}
}
