package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/caelum-dev/caelum/internal/importer"
	"github.com/caelum-dev/caelum/internal/taxonomy"
)

// runTimeout bounds a whole import so the CLI never hangs on Notion.
const runTimeout = 10 * time.Minute

type importOptions struct {
	configFlags
	format  string
	dryRun  bool
	all     bool
	repoDir string
}

func newImportCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import [file.csv]",
		Short: "Classify a card export and write its expenses to Notion",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.all && len(args) > 0 {
				return fmt.Errorf("--all takes no file argument")
			}
			if !opts.all && len(args) != 1 {
				return fmt.Errorf("expected one CSV file, or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(opts.repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			opts.repoDir = absDir
			return runImport(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	opts.configFlags.register(cmd)
	cmd.Flags().StringVar(&opts.format, "format", "", "statement format (default: detected from the header, then config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "classify and print without contacting Notion")
	cmd.Flags().BoolVar(&opts.all, "all", false, "import every CSV in import/ and move it to import/processed/")
	cmd.Flags().StringVar(&opts.repoDir, "dir", ".", "project directory holding import/ and logs/")

	return cmd
}

func runImport(ctx context.Context, out io.Writer, opts importOptions, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	ctx, cfg, log, err := opts.setup(ctx)
	if err != nil {
		return err
	}

	registry := importer.DefaultRegistry()
	fallback := opts.format
	if fallback == "" {
		fallback = cfg.Import.Format
	}
	if registry.Get(fallback) == nil {
		return fmt.Errorf("unknown format %q (available: %s)", fallback, strings.Join(registry.Formats(), ", "))
	}

	driver := importer.NewDriver(taxonomy.MustDefault(), cfg.Import.DateLayouts)

	var session *importer.Session
	if opts.dryRun {
		session = importer.NewSession(driver, nil, nil, opts.repoDir)
	} else {
		store, err := opts.newStore(cfg)
		if err != nil {
			return err
		}
		session = importer.NewSession(driver, newReconciler(store, cfg), store, opts.repoDir)
	}

	var files []string
	if opts.all {
		found, err := importer.Scan(opts.repoDir)
		if err != nil {
			return err
		}
		for _, st := range found {
			if st.Empty() {
				log.Info().Str("file", st.Name).Msg("Skipping empty statement")
				continue
			}
			files = append(files, st.Path)
		}
		if len(files) == 0 {
			fmt.Fprintln(out, "No CSV files in import/.")
			return nil
		}
	} else {
		files = args
	}

	log.Info().
		Str("run_id", session.RunID()).
		Int("files", len(files)).
		Bool("dry_run", opts.dryRun).
		Msg("Starting import")

	for _, path := range files {
		parser, err := statementParser(registry, path, opts.format, fallback)
		if err != nil {
			return err
		}
		log.Debug().Str("file", filepath.Base(path)).Str("format", parser.Format()).Msg("Statement format")

		report, err := session.Import(ctx, path, parser)
		if report != nil {
			printReport(out, report)
		}
		if err != nil {
			return err
		}
		if opts.all && !opts.dryRun {
			if err := importer.MarkProcessed(opts.repoDir, filepath.Base(path)); err != nil {
				return err
			}
		}
	}
	return nil
}

// statementParser picks the parser for one statement. An explicit --format
// wins; otherwise the header decides, and unknown layouts use fallback.
func statementParser(registry *importer.Registry, path, explicit, fallback string) (importer.Parser, error) {
	if explicit != "" {
		return registry.Get(explicit), nil
	}
	p, err := registry.DetectFile(path)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = registry.Get(fallback)
	}
	return p, nil
}

func printReport(out io.Writer, r *importer.Report) {
	for _, e := range r.Expenses {
		fmt.Fprintln(out, e.String())
	}
	fmt.Fprintf(out, "%s: %d rows, %d expenses, %d skipped, %d uncategorized, %d imported, %d failed\n",
		filepath.Base(r.File), r.Rows, len(r.Expenses), r.Skipped, r.Uncategorized, r.Imported, r.Failed)
}
