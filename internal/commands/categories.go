package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawelciurka/money-insights/internal/rules"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the resolved category vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			set, err := rules.Load(cfg.Rules.Path, true)
			if err != nil {
				return err
			}

			for _, c := range set.Categories() {
				fmt.Println(c)
			}
			return nil
		},
	}
}
