package tracker

import (
	"fmt"
	"strings"

	"tally/internal/core"
)

const (
	replyNotUnderstood = "❌ I couldn't understand that.\n\nTry:\n• 'Lunch 15.50'\n• 'help' for commands"
	replySaveError     = "❌ Error saving expense. Please try again."

	replyHelp = `🤖 *Expense Tracker Help*

📝 Add expense:
• "Lunch 15.50"
• "Coffee 5.25"
• "Uber 12"

📊 View summaries:
• "summary" or "today"
• "week"
• "month"

💾 Data stored in your ledger
🤖 AI categorizes automatically!`
)

var windowHeadings = map[core.Window]struct {
	title string
	empty string
}{
	core.WindowToday: {"Today's Expenses", "No expenses recorded today."},
	core.WindowWeek:  {"This Week", "No expenses this week."},
	core.WindowMonth: {"This Month", "No expenses this month."},
}

func savedReply(description string, amount core.Money, category string) string {
	return fmt.Sprintf("✅ Saved: %s - $%s\n📁 Category: %s",
		description, core.FormatCents(amount.Cents), category)
}

func summaryReply(s core.Summary) string {
	h := windowHeadings[s.Window]

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s: $%s*\n\n", h.title, core.FormatCents(s.Total.Cents))
	if len(s.ByCategory) == 0 {
		b.WriteString(h.empty)
		return b.String()
	}
	for _, ca := range s.ByCategory {
		fmt.Fprintf(&b, "• %s: $%s\n", ca.Name, core.FormatCents(ca.Amount.Cents))
	}
	return b.String()
}
