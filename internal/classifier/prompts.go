package classifier

// categoryPromptTemplate asks for exactly one word back. The first
// placeholder is the description, the second the comma-joined category
// suggestions.
const categoryPromptTemplate = `Categorize this expense into ONE word category: "%s"

Common categories: %s

Respond with ONLY the category name, nothing else.`
