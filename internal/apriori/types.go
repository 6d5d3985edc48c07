package apriori

import (
	"errors"
	"sort"

	"github.com/blackwell-systems/arules/internal/itemset"
)

// ErrMissingSupport indicates that rule derivation asked for the count of an
// itemset that is absent from the frequency table.
var ErrMissingSupport = errors.New("apriori: itemset support was never counted")

// Thresholds holds the minimum support and confidence of a run.
type Thresholds struct {
	MinSupport    float64 // (0, 1]
	MinConfidence float64 // [0, 1]
}

// FrequencyTable maps itemsets to their occurrence counts. Counts are
// recorded at most once per itemset and never overwritten.
type FrequencyTable struct {
	counts map[string]int
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Count returns the recorded count of s and whether s was ever counted.
func (t *FrequencyTable) Count(s itemset.Itemset) (int, bool) {
	n, ok := t.counts[s.Key()]
	return n, ok
}

// Len returns the number of itemsets counted so far.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Snapshot returns a copy of the table keyed by itemset key.
func (t *FrequencyTable) Snapshot() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// record stores n for s unless s is already present. It returns the count
// the table holds afterwards.
func (t *FrequencyTable) record(s itemset.Itemset, n int) int {
	key := s.Key()
	if prev, ok := t.counts[key]; ok {
		return prev
	}
	t.counts[key] = n
	return n
}

// LevelMap maps a level k to the frequent k-itemsets found at that level.
type LevelMap map[int][]itemset.Itemset

// Levels returns the levels present, ascending.
func (m LevelMap) Levels() []int {
	levels := make([]int, 0, len(m))
	for k := range m {
		levels = append(levels, k)
	}
	sort.Ints(levels)
	return levels
}

// Total returns the number of frequent itemsets across all levels.
func (m LevelMap) Total() int {
	total := 0
	for _, sets := range m {
		total += len(sets)
	}
	return total
}

// Result is the outcome of one Apriori run.
type Result struct {
	Levels       LevelMap
	Frequencies  *FrequencyTable
	Transactions int // N, the support denominator
}

// Rule is an association rule Antecedent => Consequent derived from a
// frequent itemset.
type Rule struct {
	Antecedent       itemset.Itemset
	Consequent       itemset.Itemset
	AntecedentLabels []string
	ConsequentLabels []string
	AntecedentCount  int     // support count of the antecedent
	ItemsetCount     int     // support count of antecedent ∪ consequent
	Confidence       float64 // ItemsetCount / AntecedentCount, 2 decimals
	Support          float64 // ItemsetCount / N, 2 decimals
}

// Decoder turns item codes back into human-readable labels.
type Decoder interface {
	Labels(s itemset.Itemset) []string
}
