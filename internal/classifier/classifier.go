// Package classifier assigns a category to a free-text expense
// description using an external model.
package classifier

import "context"

// Categorizer maps an expense description to a single-word category.
type Categorizer interface {
	Categorize(ctx context.Context, description string) (string, error)
}

// DefaultCategories are offered to the model as suggestions. The model
// may answer outside this list.
var DefaultCategories = []string{
	"Food", "Transport", "Shopping", "Entertainment",
	"Bills", "Health", "Education", "Groceries", "Other",
}
