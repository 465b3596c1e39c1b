package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caelum-dev/caelum/internal/model"
	"github.com/caelum-dev/caelum/internal/taxonomy"
)

func newTagsCommand() *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect and sync the category taxonomy",
	}
	tagsCmd.AddCommand(newTagsListCommand())
	tagsCmd.AddCommand(newTagsSyncCommand())
	return tagsCmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "Print categories, icons and keywords in match order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := taxonomy.MustDefault()
			if len(args) == 0 {
				printTaxonomy(cmd.OutOrStdout(), svc)
				return nil
			}
			e, ok := svc.Get(model.Category(args[0]))
			if !ok {
				return fmt.Errorf("unknown category %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", e.Icon, e.Category, keywordList(e))
			return nil
		},
	}
}

func printTaxonomy(out io.Writer, svc *taxonomy.Service) {
	for i, e := range svc.All() {
		fmt.Fprintf(out, "%d. %s %s: %s\n", i+1, e.Icon, e.Category, keywordList(e))
	}
}

func keywordList(e taxonomy.Entry) string {
	if len(e.Keywords) == 0 {
		return "(manual only)"
	}
	return strings.Join(e.Keywords, ", ")
}

// tagLabels renders remote tag names, prefixing the icon of known categories.
func tagLabels(svc *taxonomy.Service, names []string) []string {
	labels := make([]string, len(names))
	for i, name := range names {
		labels[i] = name
		if icon := svc.Icon(model.Category(name)); icon != "" {
			labels[i] = icon + " " + name
		}
	}
	return labels
}

func newTagsSyncCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Add missing categories to the Notion Tag property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, _, err := flags.setup(cmd.Context())
			if err != nil {
				return err
			}
			store, err := flags.newStore(cfg)
			if err != nil {
				return err
			}

			schema, err := newReconciler(store, cfg).Reconcile(ctx)
			if err != nil {
				return err
			}
			labels := tagLabels(taxonomy.MustDefault(), schema.TagNames())
			fmt.Fprintf(cmd.OutOrStdout(), "Tag options: %s\n", strings.Join(labels, ", "))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
