package apriori

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/arules/internal/itemset"
)

func mineABC(t *testing.T) *Result {
	t.Helper()
	txs, seed := abcTransactions()
	res, err := Run(context.Background(), txs, seed, 0.5)
	require.NoError(t, err)
	return res
}

func TestDeriveRules_Confidence(t *testing.T) {
	res := mineABC(t)

	rules, _, err := DeriveRules(res.Levels, res.Frequencies, letters{}, Thresholds{MinSupport: 0.5, MinConfidence: 0}, res.Transactions)
	require.NoError(t, err)
	require.Len(t, rules, 4)

	// Generation order: {a,b} then {b,c}, antecedents in mask order.
	want := []struct {
		ante, cons   []string
		anteCount    int
		itemsetCount int
		confidence   float64
		support      float64
	}{
		{[]string{"a"}, []string{"b"}, 2, 2, 1.00, 0.67},
		{[]string{"b"}, []string{"a"}, 3, 2, 0.67, 0.67},
		{[]string{"b"}, []string{"c"}, 3, 2, 0.67, 0.67},
		{[]string{"c"}, []string{"b"}, 2, 2, 1.00, 0.67},
	}
	for i, w := range want {
		r := rules[i]
		assert.Equal(t, w.ante, r.AntecedentLabels, "rule %d", i)
		assert.Equal(t, w.cons, r.ConsequentLabels, "rule %d", i)
		assert.Equal(t, w.anteCount, r.AntecedentCount, "rule %d", i)
		assert.Equal(t, w.itemsetCount, r.ItemsetCount, "rule %d", i)
		assert.InDelta(t, w.confidence, r.Confidence, 1e-9, "rule %d", i)
		assert.InDelta(t, w.support, r.Support, 1e-9, "rule %d", i)
	}
}

func TestDeriveRules_ConfidenceThreshold(t *testing.T) {
	res := mineABC(t)

	tests := []struct {
		name          string
		minConfidence float64
		want          int
	}{
		{name: "everything", minConfidence: 0, want: 4},
		{name: "rounded boundary is inclusive", minConfidence: 0.67, want: 4},
		{name: "only certain rules", minConfidence: 0.75, want: 2},
		{name: "certain rules at 1.0", minConfidence: 1.0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, _, err := DeriveRules(res.Levels, res.Frequencies, nil, Thresholds{MinSupport: 0.5, MinConfidence: tt.minConfidence}, res.Transactions)
			require.NoError(t, err)
			assert.Len(t, rules, tt.want)
			for _, r := range rules {
				assert.Nil(t, r.AntecedentLabels)
				assert.Zero(t, r.Antecedent.Union(r.Consequent).Len()-r.Antecedent.Len()-r.Consequent.Len(), "antecedent and consequent overlap")
			}
		})
	}
}

func TestDeriveRules_Summary(t *testing.T) {
	res := mineABC(t)

	_, summary, err := DeriveRules(res.Levels, res.Frequencies, nil, Thresholds{MinSupport: 0.5, MinConfidence: 0.9}, res.Transactions)
	require.NoError(t, err)
	assert.Equal(t, "Generated sets of large itemsets:\n\n"+
		"Size of set of large itemsets L(1): 3\n"+
		"Size of set of large itemsets L(2): 2\n", summary)
}

func TestDeriveRules_MissingSupport(t *testing.T) {
	table := NewFrequencyTable()
	table.record(itemset.New(a, b), 2)
	table.record(itemset.New(a), 2)
	levels := LevelMap{2: {itemset.New(a, b)}}

	_, _, err := DeriveRules(levels, table, nil, Thresholds{MinSupport: 0.1, MinConfidence: 0}, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSupport))
	assert.Contains(t, err.Error(), "{2}")
}

func TestDeriveRules_SkipsItemsetsBelowSupport(t *testing.T) {
	res := mineABC(t)

	rules, _, err := DeriveRules(res.Levels, res.Frequencies, nil, Thresholds{MinSupport: 0.9, MinConfidence: 0}, res.Transactions)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestSplits_Completeness(t *testing.T) {
	for k := 2; k <= 5; k++ {
		items := make([]itemset.Item, k)
		for i := range items {
			items[i] = itemset.Item(i + 1)
		}
		set := itemset.New(items...)

		splits, err := Splits(set)
		require.NoError(t, err)
		assert.Len(t, splits, (1<<k)-2)

		seen := make(map[string]bool)
		for _, sp := range splits {
			assert.NotZero(t, sp.Antecedent.Len())
			assert.NotZero(t, sp.Consequent.Len())
			assert.True(t, sp.Antecedent.Union(sp.Consequent).Equal(set))
			assert.Zero(t, sp.Antecedent.Len()+sp.Consequent.Len()-k)

			key := sp.Antecedent.Key() + "=>" + sp.Consequent.Key()
			assert.False(t, seen[key], "duplicate split %s", key)
			seen[key] = true
		}
	}
}

func TestSplits_SingletonHasNone(t *testing.T) {
	splits, err := Splits(itemset.New(a))
	require.NoError(t, err)
	assert.Empty(t, splits)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.0 / 3.0, 0.67},
		{1.0 / 3.0, 0.33},
		{1, 1},
		{0.125, 0.12},
		{0.375, 0.38},
		{0, 0},
		{23.0 / 40.0, 0.57},
		{37.0 / 40.0, 0.93},
		{3.0 / 40.0, 0.07},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 1e-12, "Round2(%v)", tt.in)
	}
}

// TestDeriveRules_ThresholdUsesStoredValue checks acceptance at the
// threshold for confidences whose decimal midpoint is not representable.
func TestDeriveRules_ThresholdUsesStoredValue(t *testing.T) {
	tests := []struct {
		name           string
		withB          int
		minConfidence  float64
		wantAtoB       bool
		wantConfidence float64
	}{
		{name: "37/40 reaches 0.93", withB: 37, minConfidence: 0.93, wantAtoB: true, wantConfidence: 0.93},
		{name: "23/40 reaches 0.57", withB: 23, minConfidence: 0.57, wantAtoB: true, wantConfidence: 0.57},
		{name: "23/40 misses 0.58", withB: 23, minConfidence: 0.58, wantAtoB: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([][]itemset.Item, 40)
			for i := range records {
				records[i] = []itemset.Item{a}
				if i < tt.withB {
					records[i] = append(records[i], b)
				}
			}
			txs, seed := itemset.BuildTransactions(records)
			res, err := Run(context.Background(), txs, seed, 0.5)
			require.NoError(t, err)

			rules, _, err := DeriveRules(res.Levels, res.Frequencies, letters{}, Thresholds{MinSupport: 0.5, MinConfidence: tt.minConfidence}, res.Transactions)
			require.NoError(t, err)

			var found bool
			for _, r := range rules {
				if r.Antecedent.Equal(itemset.New(a)) {
					found = true
					assert.Equal(t, tt.wantConfidence, r.Confidence)
				}
			}
			assert.Equal(t, tt.wantAtoB, found)
		})
	}
}

func TestSortByConfidence_Stable(t *testing.T) {
	rules := []Rule{
		{Confidence: 0.8, ItemsetCount: 1},
		{Confidence: 0.9, ItemsetCount: 2},
		{Confidence: 0.8, ItemsetCount: 3},
		{Confidence: 1.0, ItemsetCount: 4},
		{Confidence: 0.9, ItemsetCount: 5},
	}
	SortByConfidence(rules)

	var order []int
	for _, r := range rules {
		order = append(order, r.ItemsetCount)
	}
	assert.Equal(t, []int{4, 2, 5, 1, 3}, order)
}
