package apriori

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/arules/internal/itemset"
)

const (
	a itemset.Item = iota + 1
	b
	c
)

// letters labels items 1..26 as a..z.
type letters struct{}

func (letters) Labels(s itemset.Itemset) []string {
	var out []string
	for _, item := range s.Items() {
		out = append(out, string(rune('a'+int(item)-1)))
	}
	return out
}

func abcTransactions() (itemset.TransactionSet, []itemset.Itemset) {
	return itemset.BuildTransactions([][]itemset.Item{
		{a, b},
		{a, b, c},
		{b, c},
	})
}

func keys(sets []itemset.Itemset) []string {
	out := make([]string, 0, len(sets))
	for _, s := range sets {
		out = append(out, s.Key())
	}
	return out
}

func TestRun_LevelSizes(t *testing.T) {
	for _, opts := range [][]Option{nil, {WithIndex()}} {
		txs, seed := abcTransactions()

		res, err := New(opts...).Run(context.Background(), txs, seed, 0.5)
		require.NoError(t, err)

		assert.Equal(t, 3, res.Transactions)
		assert.Equal(t, []int{1, 2}, res.Levels.Levels())
		assert.Equal(t, []string{"1", "2", "3"}, keys(res.Levels[1]))
		assert.Equal(t, []string{"1,2", "2,3"}, keys(res.Levels[2]))

		assert.Equal(t, map[string]int{
			"1":     2,
			"2":     3,
			"3":     2,
			"1,2":   2,
			"1,3":   1,
			"2,3":   2,
			"1,2,3": 1,
		}, res.Frequencies.Snapshot())
	}
}

func TestRun_EmptyInput(t *testing.T) {
	txs, seed := itemset.BuildTransactions(nil)

	res, err := Run(context.Background(), txs, seed, 0.5)
	require.NoError(t, err)
	assert.Empty(t, res.Levels)
	assert.Equal(t, 0, res.Frequencies.Len())

	rules, summary, err := DeriveRules(res.Levels, res.Frequencies, letters{}, Thresholds{MinSupport: 0.5, MinConfidence: 0.5}, res.Transactions)
	require.NoError(t, err)
	assert.Empty(t, rules)
	assert.Equal(t, "Generated sets of large itemsets:\n\n", summary)
}

func TestRun_NothingFrequent(t *testing.T) {
	txs, seed := abcTransactions()

	res, err := Run(context.Background(), txs, seed, 1.0)
	require.NoError(t, err)

	// b is in every transaction, nothing else is.
	assert.Equal(t, []int{1}, res.Levels.Levels())
	assert.Equal(t, []string{"2"}, keys(res.Levels[1]))
}

func TestRun_Idempotent(t *testing.T) {
	txs, seed := randomTransactions(rand.New(rand.NewSource(7)), 80, 8, 0.45)

	first, err := Run(context.Background(), txs, seed, 0.2)
	require.NoError(t, err)
	second, err := Run(context.Background(), txs, seed, 0.2)
	require.NoError(t, err)

	assert.Equal(t, first.Levels, second.Levels)
	assert.Equal(t, first.Frequencies.Snapshot(), second.Frequencies.Snapshot())
}

func TestRun_IndexMatchesScan(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		txs, seed := randomTransactions(r, 60, 9, 0.4)

		scan, err := New().Run(context.Background(), txs, seed, 0.15)
		require.NoError(t, err)
		indexed, err := New(WithIndex()).Run(context.Background(), txs, seed, 0.15)
		require.NoError(t, err)

		assert.Equal(t, scan.Levels, indexed.Levels)
		assert.Equal(t, scan.Frequencies.Snapshot(), indexed.Frequencies.Snapshot())
	}
}

func TestRun_Cancelled(t *testing.T) {
	txs, seed := abcTransactions()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, txs, seed, 0.5)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestRun_MatchesBruteForce checks completeness and anti-monotonicity: the
// frequent itemsets are exactly the itemsets whose brute-force support
// reaches the threshold, and every subset of a frequent itemset is frequent
// and present in the frequency table.
func TestRun_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const numItems = 6

	for round := 0; round < 25; round++ {
		txs, seed := randomTransactions(r, 40, numItems, 0.5)
		minSupport := 0.1 + r.Float64()*0.5

		res, err := New(WithIndex()).Run(context.Background(), txs, seed, minSupport)
		require.NoError(t, err)

		frequent := make(map[string]bool)
		for _, k := range res.Levels.Levels() {
			for _, s := range res.Levels[k] {
				assert.Equal(t, k, s.Len())
				frequent[s.Key()] = true
			}
		}

		for mask := 1; mask < 1<<numItems; mask++ {
			var items []itemset.Item
			for bit := 0; bit < numItems; bit++ {
				if mask&(1<<bit) != 0 {
					items = append(items, itemset.Item(bit+1))
				}
			}
			s := itemset.New(items...)
			count := scanCounter{txs: txs}.Count(s)
			want := len(txs) > 0 && float64(count)/float64(len(txs)) >= minSupport
			assert.Equal(t, want, frequent[s.Key()], "round %d itemset %s count %d", round, s, count)
		}

		for key := range frequent {
			s := parseKey(t, key)
			subsets, err := s.ProperSubsets()
			require.NoError(t, err)
			for _, sub := range subsets {
				assert.True(t, frequent[sub.Key()], "subset %s of frequent %s is not frequent", sub, s)
				n, ok := res.Frequencies.Count(sub)
				assert.True(t, ok, "subset %s of %s missing from table", sub, s)
				assert.Positive(t, n)
			}
		}
	}
}

func TestRun_MonotonicInSupport(t *testing.T) {
	txs, seed := randomTransactions(rand.New(rand.NewSource(3)), 100, 8, 0.5)
	th := Thresholds{MinConfidence: 0.6}

	prevItemsets, prevRules := -1, -1
	for _, s := range []float64{0.9, 0.7, 0.5, 0.35, 0.2, 0.1} {
		th.MinSupport = s
		res, err := Run(context.Background(), txs, seed, s)
		require.NoError(t, err)
		rules, _, err := DeriveRules(res.Levels, res.Frequencies, nil, th, res.Transactions)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, res.Levels.Total(), prevItemsets, "support %.2f", s)
		assert.GreaterOrEqual(t, len(rules), prevRules, "support %.2f", s)
		prevItemsets, prevRules = res.Levels.Total(), len(rules)
	}
}

func randomTransactions(r *rand.Rand, n, numItems int, density float64) (itemset.TransactionSet, []itemset.Itemset) {
	records := make([][]itemset.Item, n)
	for i := range records {
		for item := 1; item <= numItems; item++ {
			if r.Float64() < density {
				records[i] = append(records[i], itemset.Item(item))
			}
		}
	}
	return itemset.BuildTransactions(records)
}

func parseKey(t *testing.T, key string) itemset.Itemset {
	t.Helper()
	tx, err := itemset.ParseTransaction(key, ",")
	require.NoError(t, err)
	return tx.Itemset
}
