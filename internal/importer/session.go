package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/caelum-dev/caelum/internal/importlog"
	"github.com/caelum-dev/caelum/internal/logger"
	"github.com/caelum-dev/caelum/internal/model"
)

// Reconciler brings the remote taxonomy up to date.
type Reconciler interface {
	Reconcile(ctx context.Context) (model.Schema, error)
}

// RecordWriter persists one tagged expense and returns its remote id.
type RecordWriter interface {
	WriteExpense(ctx context.Context, e model.Expense) (string, error)
}

// Report summarises one imported file.
type Report struct {
	File          string
	RunID         string
	Rows          int
	Imported      int
	Skipped       int
	Uncategorized int
	Failed        int
	Expenses      []model.Expense
}

// Session imports files into the expense database. The taxonomy is
// reconciled once, before the first file.
type Session struct {
	driver     *Driver
	reconciler Reconciler
	writer     RecordWriter
	logRoot    string
	runID      string
	now        func() time.Time

	reconciled bool
	schema     model.Schema
}

// NewSession creates a Session. A nil reconciler and writer make a dry run:
// nothing is sent anywhere. logRoot is where logs/import-log.csv lives; empty
// disables the import log.
func NewSession(driver *Driver, reconciler Reconciler, writer RecordWriter, logRoot string) *Session {
	return &Session{
		driver:     driver,
		reconciler: reconciler,
		writer:     writer,
		logRoot:    logRoot,
		runID:      uuid.NewString(),
		now:        time.Now,
	}
}

// RunID identifies this session in logs.
func (s *Session) RunID() string { return s.runID }

// DryRun reports whether the session writes nothing remotely.
func (s *Session) DryRun() bool { return s.writer == nil }

// Prepare reconciles the remote taxonomy. It runs at most once per session.
func (s *Session) Prepare(ctx context.Context) (model.Schema, error) {
	if s.reconciled || s.reconciler == nil {
		return s.schema, nil
	}
	schema, err := s.reconciler.Reconcile(ctx)
	if err != nil {
		return model.Schema{}, err
	}
	s.schema = schema
	s.reconciled = true
	return schema, nil
}

// Import parses path with parser, classifies its expenses and writes them.
// Rejected rows and failed writes are reported but do not stop the file; an
// error is returned after the loop if any write failed.
func (s *Session) Import(ctx context.Context, path string, parser Parser) (*Report, error) {
	log := logger.FromContext(ctx).With().
		Str("run_id", s.runID).
		Str("file", filepath.Base(path)).
		Logger()
	ctx = logger.WithContext(ctx, log)

	schema, err := s.Prepare(ctx)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	res := s.driver.Run(ctx, rows)
	report := &Report{
		File:          path,
		RunID:         s.runID,
		Rows:          len(rows),
		Skipped:       len(res.Skipped),
		Uncategorized: res.Uncategorized,
		Expenses:      res.Expenses,
	}

	var entries []importlog.Entry
	for _, rowErr := range res.Skipped {
		entries = append(entries, s.entry(rowErr.RowID, importlog.ActionSkipped, rowErr.Error(), ""))
	}

	for _, e := range res.Expenses {
		if s.writer == nil {
			entries = append(entries, s.entry(e.RowID, importlog.ActionDryRun, string(e.Category), ""))
			continue
		}

		if schema.Cards != nil {
			if _, ok := schema.Cards[e.Institution]; !ok {
				log.Debug().Str("card", e.Institution).Msg("Card option not in schema, Notion will create it")
			}
		}

		pageID, err := s.writer.WriteExpense(ctx, e)
		if err != nil {
			log.Warn().Err(err).Str("row_id", e.RowID).Msg("Failed to write expense")
			report.Failed++
			entries = append(entries, s.entry(e.RowID, importlog.ActionFailed, err.Error(), ""))
			continue
		}

		report.Imported++
		action := importlog.ActionImported
		if !e.Category.IsSet() {
			action = importlog.ActionUncategorized
		}
		entries = append(entries, s.entry(e.RowID, action, string(e.Category), pageID))
	}

	if s.logRoot != "" && len(entries) > 0 {
		if err := importlog.Append(s.logRoot, entries); err != nil {
			log.Warn().Err(err).Msg("Failed to write import log")
		}
	}

	log.Info().
		Int("rows", report.Rows).
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Int("uncategorized", report.Uncategorized).
		Int("failed", report.Failed).
		Bool("dry_run", s.DryRun()).
		Msg("Import finished")

	if report.Failed > 0 {
		return report, fmt.Errorf("%d of %d expenses failed to write", report.Failed, len(res.Expenses))
	}
	return report, nil
}

func (s *Session) entry(rowID string, action importlog.Action, details, pageID string) importlog.Entry {
	return importlog.Entry{
		Timestamp: s.now(),
		RunID:     s.runID,
		RowID:     rowID,
		Action:    action,
		Details:   details,
		PageID:    pageID,
	}
}
