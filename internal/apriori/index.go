package apriori

import (
	"github.com/blackwell-systems/arules/internal/itemset"
)

// Index maps each item to the ascending ids of the transactions containing
// it. Counting a candidate intersects the id lists of its items, starting
// from the shortest list.
type Index struct {
	tids map[itemset.Item][]int
	n    int
}

// NewIndex builds the index for txs in a single pass.
func NewIndex(txs itemset.TransactionSet) *Index {
	ix := &Index{
		tids: make(map[itemset.Item][]int),
		n:    len(txs),
	}
	for id, tx := range txs {
		for _, item := range tx.Items() {
			ix.tids[item] = append(ix.tids[item], id)
		}
	}
	return ix
}

// Count returns the number of indexed transactions containing every item of
// s. The empty itemset is contained in every transaction.
func (ix *Index) Count(s itemset.Itemset) int {
	items := s.Items()
	if len(items) == 0 {
		return ix.n
	}

	shortest := 0
	for i, item := range items {
		if len(ix.tids[item]) < len(ix.tids[items[shortest]]) {
			shortest = i
		}
	}

	acc := ix.tids[items[shortest]]
	for i, item := range items {
		if i == shortest {
			continue
		}
		if len(acc) == 0 {
			return 0
		}
		acc = intersect(acc, ix.tids[item])
	}
	return len(acc)
}

// intersect returns the ids present in both ascending lists.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
