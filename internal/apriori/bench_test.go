package apriori_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/blackwell-systems/arules/internal/apriori"
	"github.com/blackwell-systems/arules/internal/itemset"
)

func buildRandomRecords(n, numItems int, density float64, seed int64) [][]itemset.Item {
	r := rand.New(rand.NewSource(seed))
	records := make([][]itemset.Item, n)
	for i := range records {
		for item := 1; item <= numItems; item++ {
			if r.Float64() < density {
				records[i] = append(records[i], itemset.Item(item))
			}
		}
	}
	return records
}

// BenchmarkRun compares the transaction scan with the inverted index on
// datasets of increasing size.
func BenchmarkRun(b *testing.B) {
	cases := []struct {
		name       string
		n          int
		numItems   int
		density    float64
		minSupport float64
	}{
		{"Small", 200, 12, 0.3, 0.1},
		{"Medium", 2000, 20, 0.25, 0.08},
		{"Large", 10000, 30, 0.2, 0.05},
	}

	for _, tc := range cases {
		tc := tc
		txs, seed := itemset.BuildTransactions(buildRandomRecords(tc.n, tc.numItems, tc.density, 42))

		for _, variant := range []struct {
			name string
			opts []apriori.Option
		}{
			{"Scan", nil},
			{"Index", []apriori.Option{apriori.WithIndex()}},
		} {
			variant := variant
			b.Run(tc.name+"/"+variant.name, func(b *testing.B) {
				m := apriori.New(variant.opts...)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := m.Run(context.Background(), txs, seed, tc.minSupport); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
