package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawelciurka/money-insights/internal/buildinfo"
	"github.com/pawelciurka/money-insights/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "money-insights",
		Short:   "Bank statement ingestion and categorization",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "money-insights.yaml", "config file path")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}

// loadConfig reads the config file named by the root --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
