package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caelum-dev/caelum/internal/model"
)

// Parser turns one card statement layout into raw transaction rows.
// Detect reports whether a header row belongs to this layout.
type Parser interface {
	Parse(r io.Reader) ([]model.TransactionRow, error)
	Detect(header []string) bool
	Format() string
}

// Registry maps statement format names to parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect reads the header row of a statement and returns the first parser,
// in format order, that recognises it. It returns nil for an empty statement
// or an unknown layout.
func (r *Registry) Detect(rd io.Reader) (Parser, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading statement header: %w", err)
	}
	for _, name := range r.Formats() {
		if p := r.parsers[name]; p.Detect(header) {
			return p, nil
		}
	}
	return nil, nil
}

// DetectFile is Detect over the statement at path.
func (r *Registry) DetectFile(path string) (Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return r.Detect(f)
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ExportParser{})
	r.Register(&ChaseParser{})
	return r
}

// readRecords hands every record after the header to fn. A record the csv
// package cannot parse arrives as nil with its starting line, so a stray
// quote in one transaction costs that row only.
func readRecords(cr *csv.Reader, fn func(line int, rec []string)) error {
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			fn(perr.StartLine, nil)
			continue
		}
		if err != nil {
			return err
		}
		line, _ := cr.FieldPos(0)
		fn(line, rec)
	}
}

// field returns rec[i] trimmed, or "" when the record is too short.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// ImportDir is the statement drop directory read by `caelum import --all`.
const ImportDir = "import"

// processedDir receives statements once every expense in them is written.
const processedDir = "import/processed"

// Statement is a CSV waiting in the drop directory.
type Statement struct {
	Name string
	Path string
	Size int64
}

// Empty reports whether the statement has no bytes at all.
func (s Statement) Empty() bool { return s.Size == 0 }

// Scan lists the CSV statements in <root>/import/, by name.
func Scan(root string) ([]Statement, error) {
	dir := filepath.Join(root, ImportDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var statements []Statement
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		statements = append(statements, Statement{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return statements, nil
}

// ErrAlreadyProcessed is returned when a statement of the same name was
// imported before. Moving it would hide the earlier copy.
var ErrAlreadyProcessed = errors.New("statement already processed")

// MarkProcessed moves a statement from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, ImportDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("moving %s: %w", fileName, ErrAlreadyProcessed)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
