package apriori

import (
	"github.com/blackwell-systems/arules/internal/itemset"
)

// supportCounter returns the number of transactions containing s.
type supportCounter interface {
	Count(s itemset.Itemset) int
}

// scanCounter counts by testing every transaction.
type scanCounter struct {
	txs itemset.TransactionSet
}

func (c scanCounter) Count(s itemset.Itemset) int {
	n := 0
	for _, tx := range c.txs {
		if tx.Contains(s) {
			n++
		}
	}
	return n
}

// CountAndFilter counts every candidate against txs, records each count in
// table and returns the candidates whose support reaches minSupport, in
// itemset order. Candidates already present in table keep their recorded
// count.
func CountAndFilter(candidates []itemset.Itemset, txs itemset.TransactionSet, minSupport float64, table *FrequencyTable) []itemset.Itemset {
	return countAndFilter(candidates, scanCounter{txs: txs}, len(txs), minSupport, table)
}

func countAndFilter(candidates []itemset.Itemset, counter supportCounter, n int, minSupport float64, table *FrequencyTable) []itemset.Itemset {
	if n == 0 || len(candidates) == 0 {
		return nil
	}

	var frequent []itemset.Itemset
	for _, c := range candidates {
		count, ok := table.Count(c)
		if !ok {
			count = table.record(c, counter.Count(c))
		}
		if float64(count)/float64(n) >= minSupport {
			frequent = append(frequent, c)
		}
	}
	itemset.Sort(frequent)
	return frequent
}
