package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caelum-dev/caelum/internal/model"
)

// ChaseParser parses Chase card CSV exports into export rows.
type ChaseParser struct{}

const (
	chaseDateFormat  = "01/02/2006"
	chaseNumFields   = 7
	chaseColDate     = 1
	chaseColDesc     = 2
	chaseColAmount   = 3
	chaseInstitution = "Chase"
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Detect reports whether header is a Chase card export header.
func (p *ChaseParser) Detect(header []string) bool {
	return len(header) == chaseNumFields &&
		strings.EqualFold(strings.TrimSpace(header[chaseColDate]), "Posting Date")
}

// Parse reads a Chase CSV. Dates are rewritten to YYYY-MM-DD; rows with an
// unreadable date keep the raw value and fail validation later. A header
// with the wrong field count means the file is not a Chase export.
func (p *ChaseParser) Parse(r io.Reader) ([]model.TransactionRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}
	if len(header) != chaseNumFields {
		return nil, fmt.Errorf("reading chase CSV: header has %d fields, want %d", len(header), chaseNumFields)
	}

	var rows []model.TransactionRow
	err = readRecords(cr, func(line int, rec []string) {
		rows = append(rows, chaseRow(line, rec))
	})
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}
	return rows, nil
}

// chaseRow maps one record. Short or unreadable records yield blank fields.
func chaseRow(line int, rec []string) model.TransactionRow {
	timestamp := field(rec, chaseColDate)
	desc := field(rec, chaseColDesc)
	ref := ""
	if date, err := time.Parse(chaseDateFormat, timestamp); err == nil {
		timestamp = date.Format("2006-01-02")
		ref = makeChaseRef(date, desc)
	}

	return model.TransactionRow{
		Line:        line,
		ID:          ref,
		AccountType: chaseInstitution,
		Timestamp:   timestamp,
		Description: desc,
		Amount:      field(rec, chaseColAmount),
	}
}

// makeChaseRef creates a row id like chase_20250103_GITHUB.
func makeChaseRef(date time.Time, desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("chase_%s_%s", date.Format("20060102"), prefix)
}
