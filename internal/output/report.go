package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/arules/internal/analyzer"
)

// WriteReport writes the rule report of res:
//
//	Apriori
//	=======
//
//	Minimum support: 0.50 (3 instances)
//	Minimum confidence: 0.75
//
//	Generated sets of large itemsets:
//
//	Size of set of large itemsets L(1): 3
//
//	Rule 1: a=y 2 ==> b=y 2 <conf: (1.00)> <supp: (0.67)>
//
// Rules are written in the order of res.Rules.
func WriteReport(w io.Writer, res *analyzer.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "Apriori\n=======\n\n")
	fmt.Fprintf(bw, "Minimum support: %.2f (%d instances)\n", res.Thresholds.MinSupport, res.Instances)
	fmt.Fprintf(bw, "Minimum confidence: %.2f\n\n", res.Thresholds.MinConfidence)
	fmt.Fprintf(bw, "%s\n", res.Summary)

	if len(res.Rules) == 0 {
		fmt.Fprintln(bw, "No rules found.")
	}
	for i, r := range res.Rules {
		fmt.Fprintf(bw, "Rule %d: %s %d ==> %s %d <conf: (%.2f)> <supp: (%.2f)>\n",
			i+1,
			strings.Join(r.AntecedentLabels, " "), r.AntecedentCount,
			strings.Join(r.ConsequentLabels, " "), r.ItemsetCount,
			r.Confidence, r.Support)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
