package apriori

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackwell-systems/arules/internal/itemset"
)

func TestGenerateCandidates(t *testing.T) {
	tests := []struct {
		name     string
		frequent []itemset.Itemset
		size     int
		want     []string
	}{
		{
			name:     "singletons pair up",
			frequent: []itemset.Itemset{itemset.New(1), itemset.New(2), itemset.New(3)},
			size:     2,
			want:     []string{"1,2", "1,3", "2,3"},
		},
		{
			name:     "pairs sharing one item",
			frequent: []itemset.Itemset{itemset.New(1, 2), itemset.New(2, 3)},
			size:     3,
			want:     []string{"1,2,3"},
		},
		{
			name:     "disjoint pairs are too large",
			frequent: []itemset.Itemset{itemset.New(1, 2), itemset.New(3, 4)},
			size:     3,
			want:     []string{},
		},
		{
			name: "duplicates collapse",
			frequent: []itemset.Itemset{
				itemset.New(1, 2), itemset.New(1, 3), itemset.New(2, 3),
			},
			size: 3,
			want: []string{"1,2,3"},
		},
		{
			name: "union with an infrequent subset is still proposed",
			frequent: []itemset.Itemset{
				itemset.New(1, 2), itemset.New(2, 3), itemset.New(3, 4),
			},
			size: 3,
			want: []string{"1,2,3", "2,3,4"},
		},
		{
			name:     "single input",
			frequent: []itemset.Itemset{itemset.New(5)},
			size:     2,
			want:     []string{},
		},
		{
			name:     "empty input",
			frequent: nil,
			size:     2,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCandidates(tt.frequent, tt.size)
			assert.Equal(t, tt.want, keys(got))
			for _, c := range got {
				assert.Equal(t, tt.size, c.Len())
			}
		})
	}
}

func TestGenerateCandidates_OrderIndependent(t *testing.T) {
	forward := GenerateCandidates([]itemset.Itemset{
		itemset.New(1, 2), itemset.New(1, 3), itemset.New(2, 4), itemset.New(3, 4),
	}, 3)
	backward := GenerateCandidates([]itemset.Itemset{
		itemset.New(3, 4), itemset.New(2, 4), itemset.New(1, 3), itemset.New(1, 2),
	}, 3)

	assert.Equal(t, keys(forward), keys(backward))
	assert.Equal(t, []string{"1,2,3", "1,2,4", "1,3,4", "2,3,4"}, keys(forward))
}
