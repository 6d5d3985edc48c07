package apriori

import (
	"github.com/blackwell-systems/arules/internal/itemset"
)

// GenerateCandidates returns the distinct unions of pairs of frequent
// itemsets whose size is exactly targetSize, in itemset order.
//
// Union is commutative and a self-pair yields the itemset itself, whose size
// is targetSize-1, so walking unordered pairs i < j covers every ordered
// pair. Every frequent targetSize-itemset is the union of two of its
// frequent (targetSize-1)-subsets, so no true candidate is missed. Unions
// with an infrequent subset may be produced and are dropped by counting.
func GenerateCandidates(frequent []itemset.Itemset, targetSize int) []itemset.Itemset {
	candidates := make(map[string]itemset.Itemset)
	for i := 0; i < len(frequent); i++ {
		for j := i + 1; j < len(frequent); j++ {
			u := frequent[i].Union(frequent[j])
			if u.Len() != targetSize {
				continue
			}
			candidates[u.Key()] = u
		}
	}

	out := make([]itemset.Itemset, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c)
	}
	itemset.Sort(out)
	return out
}
