package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pawelciurka/money-insights/internal/config"
	"github.com/pawelciurka/money-insights/internal/model"
	"github.com/pawelciurka/money-insights/internal/rules"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new money-insights data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	// One subdirectory per source type plus the rule and cache stores.
	dirs := []string{
		filepath.Join("data", "categories"),
		filepath.Join("data", "cache"),
	}
	for _, st := range model.SourceTypes() {
		dirs = append(dirs, filepath.Join("data", "transactions", string(st)))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write money-insights.yaml.
	cfg := config.Default(filepath.Join(dir, "data"))
	if err := config.Save(filepath.Join(dir, "money-insights.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty rule file so the first run loads cleanly.
	if _, err := os.Stat(cfg.Rules.Path); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.Rules.Path, []byte(rules.Header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing rules file: %w", err)
		}
	}

	fmt.Printf("Initialized money-insights data directory at %s\n", dir)
	return nil
}
