package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/caelum-dev/caelum/internal/model"
)

// ExportParser parses the card export format:
//
//	id,account_type,timestamp,description,amount
type ExportParser struct{}

// ExportColumns are the required header columns.
var ExportColumns = []string{"id", "account_type", "timestamp", "description", "amount"}

// Format returns the parser name.
func (p *ExportParser) Format() string { return "export" }

// Detect reports whether header names every export column.
func (p *ExportParser) Detect(header []string) bool {
	_, err := exportColumns(header)
	return err == nil
}

// Parse reads every row of an export. Columns are located by header name.
// Short rows and rows the CSV reader rejects are returned with the missing
// fields blank, so the caller can reject them individually.
func (p *ExportParser) Parse(r io.Reader) ([]model.TransactionRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading export header: %w", err)
	}

	cols, err := exportColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []model.TransactionRow
	err = readRecords(cr, func(line int, rec []string) {
		rows = append(rows, model.TransactionRow{
			Line:        line,
			ID:          field(rec, cols["id"]),
			AccountType: field(rec, cols["account_type"]),
			Timestamp:   field(rec, cols["timestamp"]),
			Description: field(rec, cols["description"]),
			Amount:      field(rec, cols["amount"]),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading export CSV: %w", err)
	}
	return rows, nil
}

func exportColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	var missing []string
	for _, c := range ExportColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("export header missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}
