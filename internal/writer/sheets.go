package writer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"TickerScribe/internal/model"
)

// SheetsWriter writes report tables to a Google Sheets spreadsheet using a
// service-account credential.
type SheetsWriter struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsWriter builds a Sheets client from a service-account JSON payload
// (typically the GOOGLE_SERVICE_ACCOUNT_JSON environment variable).
func NewSheetsWriter(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*SheetsWriter, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}
	if len(credentialsJSON) == 0 {
		return nil, errors.New("service account credentials are required")
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &SheetsWriter{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (w *SheetsWriter) Name() string { return "sheets" }

func (w *SheetsWriter) UpsertTable(ctx context.Context, worksheet string, table *model.IndicatorTable) error {
	values := append([][]interface{}{tableHeader()}, tableRows(table)...)
	return w.upsert(ctx, worksheet, values)
}

func (w *SheetsWriter) UpsertSummary(ctx context.Context, worksheet string, rows []model.Summary) error {
	values := append([][]interface{}{summaryHeader()}, summaryRows(rows)...)
	return w.upsert(ctx, worksheet, values)
}

func (w *SheetsWriter) upsert(ctx context.Context, worksheet string, values [][]interface{}) error {
	if err := w.ensureWorksheet(ctx, worksheet); err != nil {
		return err
	}
	if _, err := w.svc.Spreadsheets.Values.Clear(w.spreadsheetID, quoteTitle(worksheet), &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return mapSheetsError("clear worksheet", err)
	}
	_, err := w.svc.Spreadsheets.Values.Update(w.spreadsheetID, quoteTitle(worksheet)+"!A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return mapSheetsError("write worksheet", err)
	}
	return nil
}

// ensureWorksheet creates the named worksheet when it does not exist yet.
func (w *SheetsWriter) ensureWorksheet(ctx context.Context, worksheet string) error {
	spreadsheet, err := w.svc.Spreadsheets.Get(w.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return mapSheetsError("get spreadsheet", err)
	}
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == worksheet {
			return nil
		}
	}

	log.Printf("[INFO] worksheet %q not found, creating it", worksheet)
	_, err = w.svc.Spreadsheets.BatchUpdate(w.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: worksheet},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return mapSheetsError("add worksheet", err)
	}
	return nil
}

func (w *SheetsWriter) Close() error { return nil }

// quoteTitle wraps a worksheet title for A1 notation. Titles with dots or
// spaces (ticker symbols like 2330.TW) must be quoted.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// mapSheetsError folds Google API status codes into the writer's error
// taxonomy so callers can match with errors.Is.
func mapSheetsError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 403:
			return fmt.Errorf("%s: %v: %w", op, apiErr.Message, ErrWriteDenied)
		case 404:
			return fmt.Errorf("%s: %w", op, ErrSheetNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
