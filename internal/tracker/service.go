// Package tracker turns incoming chat messages into ledger writes and
// summary replies.
package tracker

import (
	"context"
	"strings"
	"time"

	"tally/internal/classifier"
	"tally/internal/core"
	"tally/internal/ledger"
	"tally/internal/log"
)

// FallbackCategory is used when the classifier fails or answers with
// nothing usable. An expense is never rejected for lack of a category.
const FallbackCategory = "Other"

// Service handles one message end to end: command dispatch, expense
// parsing, categorization and the reply text.
type Service struct {
	categorizer classifier.Categorizer
	ledger      ledger.Ledger
	logger      *log.Logger
	now         func() time.Time
}

func NewService(categorizer classifier.Categorizer, ldg ledger.Ledger, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentTracker)
	}
	return &Service{
		categorizer: categorizer,
		ledger:      ldg,
		logger:      logger,
		now:         time.Now,
	}
}

// HandleMessage processes one incoming message and returns the reply
// text. It never returns an error: failures map to user-facing error
// replies so the conversation keeps flowing.
func (s *Service) HandleMessage(ctx context.Context, body string) string {
	trimmed := strings.TrimSpace(body)

	switch strings.ToLower(trimmed) {
	case "summary", "today":
		return s.summarize(ctx, core.WindowToday)
	case "week":
		return s.summarize(ctx, core.WindowWeek)
	case "month":
		return s.summarize(ctx, core.WindowMonth)
	case "help":
		return replyHelp
	}

	return s.recordExpense(ctx, trimmed)
}

func (s *Service) recordExpense(ctx context.Context, text string) string {
	parsed, err := core.ParseExpense(text)
	if err != nil {
		s.logger.DebugContext(ctx, "Message did not parse as expense",
			log.FieldOperation, log.OpParse,
			log.FieldError, err)
		return replyNotUnderstood
	}

	category := s.categorize(ctx, parsed.Description)

	now := s.now()
	rec := core.ExpenseRecord{
		Date:        core.DateOnly(now),
		Description: parsed.Description,
		Amount:      parsed.Amount,
		Category:    category,
		RecordedAt:  now,
	}

	if err := s.ledger.Append(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "Failed to append expense",
			log.FieldOperation, log.OpAppend,
			log.FieldExpenseDesc, rec.Description,
			log.FieldAmountCents, rec.Amount.Cents,
			log.FieldError, err)
		return replySaveError
	}

	s.logger.InfoContext(ctx, "Expense recorded",
		log.FieldOperation, log.OpAppend,
		log.FieldExpenseDesc, rec.Description,
		log.FieldAmountCents, rec.Amount.Cents,
		log.FieldCategory, rec.Category)
	return savedReply(rec.Description, rec.Amount, rec.Category)
}

// categorize asks the classifier for a category and falls back to
// FallbackCategory on error or an empty answer.
func (s *Service) categorize(ctx context.Context, description string) string {
	if s.categorizer == nil {
		return FallbackCategory
	}
	category, err := s.categorizer.Categorize(ctx, description)
	if err != nil {
		s.logger.WarnContext(ctx, "Categorization failed, using fallback",
			log.FieldOperation, log.OpCategorize,
			log.FieldExpenseDesc, description,
			log.FieldError, err)
		return FallbackCategory
	}
	if strings.TrimSpace(category) == "" {
		return FallbackCategory
	}
	return category
}

func (s *Service) summarize(ctx context.Context, window core.Window) string {
	rows, err := s.ledger.ReadAll(ctx)
	if err != nil {
		// An unreadable ledger degrades to an empty summary.
		s.logger.ErrorContext(ctx, "Failed to read ledger for summary",
			log.FieldOperation, log.OpSummarize,
			log.FieldWindow, string(window),
			log.FieldError, err)
		rows = nil
	}
	return summaryReply(core.Summarize(rows, window, s.now()))
}
