// Package google stores the ledger in a Google Sheets worksheet with one
// expense per row (Date, Description, Amount, Category, Timestamp).
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tally/internal/core"
	"tally/internal/ledger"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var (
	_ ledger.Appender = (*Client)(nil)
	_ ledger.Reader   = (*Client)(nil)
)

var headerRow = []any{"Date", "Description", "Amount", "Category", "Timestamp"}

// New creates a Sheets-backed ledger using service account credentials.
// Credentials are passed in explicitly; nothing is read from the
// environment here.
func New(ctx context.Context, spreadsheetID, sheetName string, credentialsJSON []byte) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if strings.TrimSpace(sheetName) == "" {
		sheetName = "Expenses"
	}
	if len(credentialsJSON) == 0 {
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

// EnsureHeader writes the column header row when the sheet is still empty.
func (c *Client) EnsureHeader(ctx context.Context) error {
	rng := fmt.Sprintf("%s!A1:E1", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header %s: %w", rng, err)
	}
	if len(resp.Values) > 0 {
		return nil
	}
	vr := &gsheet.ValueRange{Values: [][]any{headerRow}}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header %s: %w", rng, err)
	}
	slog.InfoContext(ctx, "Initialized ledger sheet header", "sheet", c.sheetName)
	return nil
}

func (c *Client) Append(ctx context.Context, rec core.ExpenseRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	row := rec.ToRow()
	rng := fmt.Sprintf("%s!A:E", c.sheetName)
	vr := &gsheet.ValueRange{Values: [][]any{{row.Date, row.Description, row.Amount, row.Category, row.Timestamp}}}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", c.sheetName, err)
	}

	slog.InfoContext(ctx, "Expense appended to sheet",
		"sheet", c.sheetName,
		"description", rec.Description,
		"amount_cents", rec.Amount.Cents,
		"category", rec.Category)
	return nil
}

// ReadAll scans every data row below the header. Cells are converted to
// trimmed text; short rows are padded so the summary engine can decide
// what to skip.
func (c *Client) ReadAll(ctx context.Context) ([]core.Row, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	rng := fmt.Sprintf("%s!A2:E", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}

	rows := make([]core.Row, 0, len(resp.Values))
	for _, cells := range resp.Values {
		rows = append(rows, rowFromCells(cells))
	}
	return rows, nil
}

func rowFromCells(cells []any) core.Row {
	return core.Row{
		Date:        cellText(cells, 0),
		Description: cellText(cells, 1),
		Amount:      cellText(cells, 2),
		Category:    cellText(cells, 3),
		Timestamp:   cellText(cells, 4),
	}
}

func cellText(cells []any, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(cells[idx]))
}
