package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pawelciurka/money-insights/internal/model"
	"github.com/pawelciurka/money-insights/internal/rules"
)

func newRulesCommand() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage category rules",
	}
	rulesCmd.AddCommand(newRulesAddCommand())
	rulesCmd.AddCommand(newRulesListCommand())
	return rulesCmd
}

func newRulesAddCommand() *cobra.Command {
	var column string
	var relation string
	var value string
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a single-condition category rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			col, err := model.ParseColumn(column)
			if err != nil {
				return err
			}
			rel, err := rules.ParseRelation(relation)
			if err != nil {
				return err
			}

			if err := rules.AddRule(cfg.Rules.Path, col, rel, value, category); err != nil {
				return err
			}
			fmt.Printf("Added rule: %s %s %q -> %s\n", col, rel, value, category)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "transaction column the condition reads (required)")
	cmd.Flags().StringVar(&relation, "relation", "contains", "equals or contains")
	cmd.Flags().StringVar(&value, "value", "", "literal compared against the column (required)")
	cmd.Flags().StringVar(&category, "category", "", "category the rule assigns (required)")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newRulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the rule set in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			set, err := rules.Load(cfg.Rules.Path, false)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "rule_id\tcategory\tconditions")
			for _, r := range set.Rules {
				fmt.Fprintf(w, "%d\t%s\t", r.ID, r.Category)
				for i, c := range r.Conditions {
					if i > 0 {
						fmt.Fprint(w, " AND ")
					}
					fmt.Fprintf(w, "%s %s %q", c.Column, c.Relation, c.Value)
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}
