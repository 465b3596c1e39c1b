package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/caelum-dev/caelum/internal/buildinfo"
	"github.com/caelum-dev/caelum/internal/config"
	"github.com/caelum-dev/caelum/internal/logger"
	"github.com/caelum-dev/caelum/internal/notion"
	"github.com/caelum-dev/caelum/internal/taxonomy"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "caelum",
		Short:   "Import card transactions into a Notion expense database",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}

// configFlags are shared by commands that load caelum.yaml and .env.
type configFlags struct {
	configPath string
	envPath    string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", config.FileName, "config file")
	cmd.Flags().StringVar(&f.envPath, "env", ".env", "file holding NOTION_TOKEN and NOTION_DATABASE")
}

// setup loads the config and returns a context carrying the configured logger.
func (f *configFlags) setup(ctx context.Context) (context.Context, *config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadOrDefault(f.configPath)
	if err != nil {
		return ctx, nil, zerolog.Nop(), err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	return logger.WithContext(ctx, log), cfg, log, nil
}

// newStore connects to the expense database named in the credentials.
func (f *configFlags) newStore(cfg *config.Config) (*notion.Store, error) {
	creds, err := config.LoadCredentials(f.envPath)
	if err != nil {
		return nil, err
	}
	client := notion.NewNotionClient(creds.NotionToken)
	return notion.NewStore(client, creds.DatabaseID, notion.PropertyNamesFromConfig(cfg.Notion)), nil
}

func newReconciler(store taxonomy.SchemaStore, cfg *config.Config) *taxonomy.Reconciler {
	return taxonomy.NewReconciler(store, taxonomy.MustDefault(), cfg.Notion.TagColor)
}
