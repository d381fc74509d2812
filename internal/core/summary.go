package core

import (
	"strings"
	"time"
)

// Window is a clock-relative filtering range applied to ledger rows.
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

func (w Window) Valid() bool {
	switch w {
	case WindowToday, WindowWeek, WindowMonth:
		return true
	}
	return false
}

// CategoryAmount is an amount accumulated under one category label.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary holds per-category totals and the grand total for one window.
// ByCategory preserves first-seen row order for reproducible output.
type Summary struct {
	Window     Window
	ByCategory []CategoryAmount
	Total      Money
}

// Summarize filters rows by the given window anchored at today and
// accumulates amounts per category. Rows whose date or amount fails to
// parse are skipped silently and never abort the computation. Category
// keys are compared case-sensitively with no normalization. The week and
// month windows use a plain day-difference bound (<= 7, <= 30), which is
// not calendar-aligned and does not exclude future-dated rows.
func Summarize(rows []Row, window Window, today time.Time) Summary {
	today = DateOnly(today)
	s := Summary{Window: window}
	index := map[string]int{}

	for _, r := range rows {
		date, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			continue
		}
		if !inWindow(window, today, date) {
			continue
		}
		cents, err := parseDecimal(strings.TrimSpace(r.Amount))
		if err != nil {
			continue
		}
		if i, ok := index[r.Category]; ok {
			s.ByCategory[i].Amount.Cents += cents
		} else {
			index[r.Category] = len(s.ByCategory)
			s.ByCategory = append(s.ByCategory, CategoryAmount{Name: r.Category, Amount: Money{Cents: cents}})
		}
		s.Total.Cents += cents
	}
	return s
}

func inWindow(w Window, today, date time.Time) bool {
	switch w {
	case WindowToday:
		return date.Equal(today)
	case WindowWeek:
		return today.Sub(date) <= 7*24*time.Hour
	case WindowMonth:
		return today.Sub(date) <= 30*24*time.Hour
	}
	return false
}
