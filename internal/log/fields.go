package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldExpenseDesc = "expense_description"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldWindow      = "window"
	FieldBackend     = "backend"
	FieldQueue       = "queue"
	FieldRecordID    = "record_id"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentTracker    = "tracker"
	ComponentClassifier = "classifier"
	ComponentLedger     = "ledger"
	ComponentStorage    = "storage"
	ComponentAMQP       = "amqp"
	ComponentWorker     = "worker"
	ComponentSheets     = "sheets"
	ComponentBackend    = "backend"
)

// Operations defines standard operation names
const (
	OpAppend     = "append"
	OpRead       = "read"
	OpParse      = "parse"
	OpCategorize = "categorize"
	OpSummarize  = "summarize"
	OpSync       = "sync"
	OpStartup    = "startup"
	OpShutdown   = "shutdown"
)
