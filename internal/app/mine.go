package app

import (
	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine association rules from a dataset",
	Long: `Mine frequent itemsets with the Apriori level-wise search and derive every
rule whose confidence reaches the minimum confidence.

Support of an itemset is the fraction of instances containing it. A rule
S ==> D derived from a frequent itemset I = S ∪ D has confidence
count(I)/count(S), rounded to two decimals. Rules are reported by
descending confidence; rules of equal confidence keep generation order.

Without --output the report is written to stdout. With --output the
report goes to the file and a summary table of the best rules is shown.`,
	Example: `  # Default thresholds: support 0.5, confidence 0.75
  arules mine -i vote.arff

  # Lower support, stricter confidence, report to a file
  arules mine -i vote.arff -o rules.txt -s 0.3 -c 0.95 --top 20

  # Read a table from a SQLite database
  arules mine -i baskets.db --table baskets --index`,
	RunE: runMine,
}

func init() {
	addInputFlags(mineCmd)
	addMineFlags(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return mineOnce(cmd, cfg)
}
