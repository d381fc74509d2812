package core

import (
	"errors"
	"regexp"
	"strings"
)

// Parsed is the result of successfully parsing an expense message.
type Parsed struct {
	Description string
	Amount      Money
}

// ErrNoMatch is returned when a message matches neither expense form.
var ErrNoMatch = errors.New("message does not describe an expense")

var (
	// "Lunch 15.50" — the dominant convention, tried first.
	trailingAmountRe = regexp.MustCompile(`^(.+?)\s+([0-9.]+)\s*$`)
	// "15.50 Lunch"
	leadingAmountRe = regexp.MustCompile(`^([0-9.]+)\s+(.+)$`)
)

// ParseExpense extracts a (description, amount) pair from a free-text
// message. The trailing-amount form wins when both would match ("5 5"
// parses as description "5", amount 5). A numeric token that is not a
// valid positive decimal fails that form; if neither form yields a valid
// amount and a non-empty description, ErrNoMatch is returned. Currency
// symbols are never stripped, so their presence rejects the message.
func ParseExpense(text string) (Parsed, error) {
	text = strings.TrimSpace(text)

	if m := trailingAmountRe.FindStringSubmatch(text); m != nil {
		if cents, err := ParseDecimalToCents(m[2]); err == nil {
			return Parsed{Description: strings.TrimSpace(m[1]), Amount: Money{Cents: cents}}, nil
		}
	}
	if m := leadingAmountRe.FindStringSubmatch(text); m != nil {
		if cents, err := ParseDecimalToCents(m[1]); err == nil {
			return Parsed{Description: strings.TrimSpace(m[2]), Amount: Money{Cents: cents}}, nil
		}
	}
	return Parsed{}, ErrNoMatch
}
