package importlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Action is what happened to one row.
type Action string

const (
	ActionImported      Action = "imported"
	ActionUncategorized Action = "uncategorized" // imported without a tag
	ActionSkipped       Action = "skipped"
	ActionFailed        Action = "failed"
	ActionDryRun        Action = "dry-run"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp time.Time
	RunID     string
	RowID     string
	Action    Action
	Details   string
	PageID    string
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,run_id,row_id,action,details,page_id"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/import-log.csv"
	colTimestamp = 0
	colRunID     = 1
	colRowID     = 2
	colAction    = 3
	colDetails   = 4
	colPageID    = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colRowID] = e.RowID
	row[colAction] = string(e.Action)
	row[colDetails] = e.Details
	row[colPageID] = e.PageID
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		RunID:     record[colRunID],
		RowID:     record[colRowID],
		Action:    Action(record[colAction]),
		Details:   record[colDetails],
		PageID:    record[colPageID],
	}, nil
}

// Append writes entries to <root>/logs/import-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/logs/import-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LastRun returns the run id of the most recent entry, or "".
func LastRun(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1].RunID
}

// Filter keeps entries of runID with the given action. Empty values match all.
func Filter(entries []Entry, runID string, action Action) []Entry {
	var out []Entry
	for _, e := range entries {
		if runID != "" && e.RunID != runID {
			continue
		}
		if action != "" && e.Action != action {
			continue
		}
		out = append(out, e)
	}
	return out
}
