package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used in ledger rows.
	DateLayout = "2006-01-02"
	// TimestampLayout is the recorded-at format used in ledger rows.
	TimestampLayout = "2006-01-02 15:04:05"
)

type (
	Money struct {
		Cents int64
	}

	// ExpenseRecord is a single spending event as it is persisted in the
	// ledger. Records are immutable once appended.
	ExpenseRecord struct {
		Date        time.Time // calendar date, midnight UTC
		Description string
		Amount      Money
		Category    string
		RecordedAt  time.Time
	}

	// Row is a raw ledger row as returned by a full scan. All fields are
	// text; date and amount must be re-parsed by the consumer.
	Row struct {
		Date        string
		Description string
		Amount      string
		Category    string
		Timestamp   string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrDateAfterRecord  = errors.New("date after recorded-at date")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (r ExpenseRecord) Validate() error {
	if r.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	if len(strings.TrimSpace(r.Description)) == 0 {
		return ErrEmptyDescription
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if !r.RecordedAt.IsZero() && DateOnly(r.Date).After(DateOnly(r.RecordedAt)) {
		return ErrDateAfterRecord
	}
	return nil
}

// ToRow converts the record into the text form stored in the ledger.
func (r ExpenseRecord) ToRow() Row {
	return Row{
		Date:        r.Date.Format(DateLayout),
		Description: r.Description,
		Amount:      FormatCents(r.Amount.Cents),
		Category:    r.Category,
		Timestamp:   r.RecordedAt.Format(TimestampLayout),
	}
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
