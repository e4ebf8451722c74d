package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pawelciurka/money-insights/internal/aggregate"
	"github.com/pawelciurka/money-insights/internal/logger"
	"github.com/pawelciurka/money-insights/internal/model"
	"github.com/pawelciurka/money-insights/internal/pipeline"
)

func newReportCommand() *cobra.Command {
	var groupBy string
	var frequency string
	var topN int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Ingest all export files and print a categorized summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			groupCol, err := model.ParseColumn(groupBy)
			if err != nil {
				return err
			}
			freq, err := parseFrequency(frequency)
			if err != nil {
				return err
			}

			result, err := pipeline.New(cfg, logger.New()).Run()
			if err != nil {
				return err
			}

			return printReport(result, groupCol, freq, topN)
		},
	}

	cmd.Flags().StringVar(&groupBy, "group-by", "category", "transaction column to group by")
	cmd.Flags().StringVar(&frequency, "frequency", "month", "time bucket: day, month or year")
	cmd.Flags().IntVar(&topN, "top", 7, "number of groups before the rest folds into \"other\"")

	return cmd
}

func parseFrequency(s string) (aggregate.Frequency, error) {
	switch aggregate.Frequency(s) {
	case aggregate.Daily, aggregate.Monthly, aggregate.Yearly:
		return aggregate.Frequency(s), nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

func printReport(result *pipeline.Result, groupBy model.Column, freq aggregate.Frequency, topN int) error {
	fmt.Printf("%d transactions, %d categories (recomputed %d, cached %d)\n\n",
		len(result.Transactions), len(result.Categories),
		result.Stats.Recomputed, result.Stats.FromCache)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "bucket\tincome\texpense\tdelta")
	for _, s := range aggregate.SummarizeByBucket(result.Transactions, freq) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.Bucket, s.Income.StringFixed(2), s.Expense.StringFixed(2), s.Delta.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nby %s:\n", groupBy)
	sums := aggregate.SumByGroupAndBucket(result.Transactions, groupBy, topN, freq)

	groups := make([]string, 0, len(sums))
	for g := range sums {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, group := range groups {
		buckets := make([]string, 0, len(sums[group]))
		for b := range sums[group] {
			buckets = append(buckets, b)
		}
		sort.Strings(buckets)
		for _, bucket := range buckets {
			fmt.Fprintf(w, "%s\t%s\t%s\n", group, bucket, sums[group][bucket].StringFixed(2))
		}
	}
	return w.Flush()
}
