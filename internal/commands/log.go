package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/caelum-dev/caelum/internal/importlog"
)

func newLogCommand() *cobra.Command {
	var (
		repoDir string
		runID   string
		action  string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show what happened to each row of an import run",
		Long: `Print entries from logs/import-log.csv.

By default only the most recent run is shown. Use --run to pick a run,
--all for every run, and --action to narrow to one disposition.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && runID != "" {
				return fmt.Errorf("--all and --run are mutually exclusive")
			}
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			entries, err := importlog.Read(absDir)
			if err != nil {
				return err
			}
			if !all && runID == "" {
				runID = importlog.LastRun(entries)
			}
			printLog(cmd.OutOrStdout(), importlog.Filter(entries, runID, importlog.Action(action)))
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "dir", ".", "project directory holding logs/")
	cmd.Flags().StringVar(&runID, "run", "", "run id to show (default: most recent)")
	cmd.Flags().StringVar(&action, "action", "", "only show imported, uncategorized, skipped, failed or dry-run rows")
	cmd.Flags().BoolVar(&all, "all", false, "show every run")

	return cmd
}

func printLog(out io.Writer, entries []importlog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No import log entries.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-8s  %-13s  %s", e.Timestamp.Format("2006-01-02 15:04"), e.RowID, e.Action, e.Details)
		if e.PageID != "" {
			fmt.Fprintf(out, "  page=%s", e.PageID)
		}
		fmt.Fprintln(out)
	}
}
