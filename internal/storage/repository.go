// Package storage is the SQLite ledger backend. Appends land locally and
// are queued for asynchronous replay into the spreadsheet ledger.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tally/internal/core"
	"tally/internal/ledger"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ ledger.Appender = (*SQLiteRepository)(nil)
	_ ledger.Reader   = (*SQLiteRepository)(nil)
)

// PendingExpense is an expense row awaiting replay into the sheet ledger.
type PendingExpense struct {
	ID     int64
	Record core.ExpenseRecord
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateExpense inserts a record and returns its database ID.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, rec core.ExpenseRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}
	row := rec.ToRow()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (date, description, amount_cents, category, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		row.Date, rec.Description, rec.Amount.Cents, rec.Category, row.Timestamp)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", id,
		"description", rec.Description,
		"amount_cents", rec.Amount.Cents,
		"category", rec.Category)
	return id, nil
}

// Append implements ledger.Appender.
func (r *SQLiteRepository) Append(ctx context.Context, rec core.ExpenseRecord) error {
	_, err := r.CreateExpense(ctx, rec)
	return err
}

// ReadAll implements ledger.Reader. Rows come back in insertion order with
// the amount re-rendered as decimal text, mirroring the sheet layout.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]core.Row, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, description, amount_cents, category, recorded_at
		 FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Row
	for rows.Next() {
		var row core.Row
		var cents int64
		if err := rows.Scan(&row.Date, &row.Description, &cents, &row.Category, &row.Timestamp); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		row.Amount = core.FormatCents(cents)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}
	return out, nil
}

// GetExpense retrieves a single expense by ID.
func (r *SQLiteRepository) GetExpense(ctx context.Context, id int64) (core.ExpenseRecord, error) {
	var (
		rec        core.ExpenseRecord
		date       string
		recordedAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT date, description, amount_cents, category, recorded_at
		 FROM expenses WHERE id = ?`, id).
		Scan(&date, &rec.Description, &rec.Amount.Cents, &rec.Category, &recordedAt)
	if err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("get expense %d: %w", id, err)
	}
	if rec.Date, err = time.Parse(core.DateLayout, date); err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("parse expense date %q: %w", date, err)
	}
	if rec.RecordedAt, err = time.Parse(core.TimestampLayout, recordedAt); err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)
	}
	return rec, nil
}

// GetPendingSync returns up to limit expenses still awaiting sheet replay,
// oldest first.
func (r *SQLiteRepository) GetPendingSync(ctx context.Context, limit int) ([]PendingExpense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM expenses WHERE sync_status = 'pending' ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select pending expenses: %w", err)
	}
	ids := make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan pending id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending ids: %w", err)
	}

	out := make([]PendingExpense, 0, len(ids))
	for _, id := range ids {
		rec, err := r.GetExpense(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, PendingExpense{ID: id, Record: rec})
	}
	return out, nil
}

// MarkSynced marks an expense as replayed into the sheet ledger.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET sync_status = 'synced', synced_at = datetime('now') WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark expense synced: %w", err)
	}
	slog.InfoContext(ctx, "Expense marked as synced", "id", id)
	return nil
}

// MarkSyncError flags an expense whose replay failed; it stays eligible
// for the periodic drain.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET sync_status = 'error' WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark expense sync error: %w", err)
	}
	slog.WarnContext(ctx, "Expense marked with sync error", "id", id)
	return nil
}

// ResetSyncErrors requeues errored expenses for another replay attempt.
func (r *SQLiteRepository) ResetSyncErrors(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET sync_status = 'pending' WHERE sync_status = 'error'`)
	if err != nil {
		return fmt.Errorf("reset sync errors: %w", err)
	}
	return nil
}
