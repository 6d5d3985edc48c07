package apriori

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/blackwell-systems/arules/internal/itemset"
)

// Split is one antecedent/consequent partition of a frequent itemset.
type Split struct {
	Antecedent itemset.Itemset
	Consequent itemset.Itemset
}

// Splits returns the 2^k-2 partitions of s into a non-empty antecedent and a
// non-empty consequent, ordered by the antecedent's subset mask.
func Splits(s itemset.Itemset) ([]Split, error) {
	subsets, err := s.ProperSubsets()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate subsets of %s: %w", s, err)
	}
	splits := make([]Split, 0, len(subsets))
	for _, sub := range subsets {
		splits = append(splits, Split{
			Antecedent: sub,
			Consequent: s.Difference(sub),
		})
	}
	return splits, nil
}

// Round2 rounds the exact value of x to two decimals, ties to even. 23/40
// is stored just below 0.575 and rounds to 0.57; 37/40 is stored just above
// 0.925 and rounds to 0.93.
func Round2(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// DeriveRules derives every rule S => I-S from the frequent itemsets I in
// levels whose rounded confidence count(I)/count(S) reaches
// th.MinConfidence. Rules come out in generation order: levels ascending,
// itemsets in level order, splits in mask order. The summary lists the
// number of frequent itemsets per level.
//
// decoder may be nil, in which case rules carry no labels.
func DeriveRules(levels LevelMap, table *FrequencyTable, decoder Decoder, th Thresholds, n int) ([]Rule, string, error) {
	var summary strings.Builder
	summary.WriteString("Generated sets of large itemsets:\n\n")

	var rules []Rule
	for _, k := range levels.Levels() {
		sets := levels[k]
		if len(sets) == 0 {
			continue
		}
		fmt.Fprintf(&summary, "Size of set of large itemsets L(%d): %d\n", k, len(sets))

		for _, set := range sets {
			derived, err := deriveFromItemset(set, table, decoder, th, n)
			if err != nil {
				return nil, "", err
			}
			rules = append(rules, derived...)
		}
	}
	return rules, summary.String(), nil
}

func deriveFromItemset(set itemset.Itemset, table *FrequencyTable, decoder Decoder, th Thresholds, n int) ([]Rule, error) {
	if set.Len() < 2 {
		return nil, nil
	}

	setCount, err := lookup(table, set)
	if err != nil {
		return nil, err
	}
	var support float64
	if n > 0 {
		support = float64(setCount) / float64(n)
	}
	if support < th.MinSupport {
		return nil, nil
	}

	splits, err := Splits(set)
	if err != nil {
		return nil, err
	}

	var rules []Rule
	for _, sp := range splits {
		anteCount, err := lookup(table, sp.Antecedent)
		if err != nil {
			return nil, err
		}

		confidence := Round2(float64(setCount) / float64(anteCount))
		if confidence < th.MinConfidence {
			continue
		}

		r := Rule{
			Antecedent:      sp.Antecedent,
			Consequent:      sp.Consequent,
			AntecedentCount: anteCount,
			ItemsetCount:    setCount,
			Confidence:      confidence,
			Support:         Round2(support),
		}
		if decoder != nil {
			r.AntecedentLabels = decoder.Labels(sp.Antecedent)
			r.ConsequentLabels = decoder.Labels(sp.Consequent)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// lookup returns the recorded, non-zero count of s.
func lookup(table *FrequencyTable, s itemset.Itemset) (int, error) {
	count, ok := table.Count(s)
	if !ok || count == 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingSupport, s)
	}
	return count, nil
}

// SortByConfidence orders rules by descending confidence, keeping the
// generation order of rules with equal confidence.
func SortByConfidence(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Confidence > rules[j].Confidence
	})
}
