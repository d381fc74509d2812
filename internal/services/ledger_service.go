// Package services composes storage and messaging into the ledger used
// by the rest of the application.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/amqp"
	"tally/internal/core"
	"tally/internal/storage"
)

// LedgerService writes expenses to SQLite and queues them for sheet
// sync over AMQP. A broker outage never fails the write; the row stays
// pending and the worker picks it up later.
type LedgerService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewLedgerService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *LedgerService {
	return &LedgerService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// Append saves an expense locally and publishes a sync message.
func (s *LedgerService) Append(ctx context.Context, rec core.ExpenseRecord) error {
	id, err := s.storage.CreateExpense(ctx, rec)
	if err != nil {
		return fmt.Errorf("save expense: %w", err)
	}

	if err := s.publishSyncMessage(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"id", id, "error", err)
		// Don't fail the request - expense is saved locally
	}

	return nil
}

// ReadAll returns every stored expense as ledger rows.
func (s *LedgerService) ReadAll(ctx context.Context) ([]core.Row, error) {
	return s.storage.ReadAll(ctx)
}

func (s *LedgerService) publishSyncMessage(ctx context.Context, id int64) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping sync message")
		return nil
	}

	return s.amqpClient.PublishRecordSync(ctx, id)
}

// Close closes both storage and AMQP connections
func (s *LedgerService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close ledger service: %v", errs)
	}

	return nil
}
