// Package itemset defines the set-based item and transaction model used by
// the Apriori miner.
//
// An Itemset is an immutable collection of unique items. Items are kept
// sorted internally so that two itemsets built from the same items in any
// order are equal and share the same Key, which makes them usable as map
// keys in frequency tables. The ordering carries no meaning beyond that.
//
// A Transaction is an itemset describing one input record. Transactions are
// built once while decoding the input and are read-only afterwards.
package itemset

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// MaxSubsetSize is the largest itemset whose subsets ProperSubsets will
// enumerate. 2^24 subsets is already far beyond any useful rule set.
const MaxSubsetSize = 24

// ErrTooLarge is returned when subset enumeration is requested for an
// itemset with more than MaxSubsetSize items.
var ErrTooLarge = errors.New("itemset: too many items to enumerate subsets")

// Item is an opaque item identifier. Only equality is meaningful.
type Item uint32

// Itemset is an immutable, unordered collection of unique items.
type Itemset struct {
	items []Item // sorted, no duplicates
}

// New builds an itemset from the given items. Duplicates are collapsed.
func New(items ...Item) Itemset {
	if len(items) == 0 {
		return Itemset{}
	}
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// Compact duplicates in place.
	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[n-1] {
			sorted[n] = sorted[i]
			n++
		}
	}
	return Itemset{items: sorted[:n]}
}

// Singleton returns the 1-itemset containing item.
func Singleton(item Item) Itemset {
	return Itemset{items: []Item{item}}
}

// Len returns the number of items in the set.
func (s Itemset) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in ascending identifier order.
func (s Itemset) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Has reports whether item is a member of s.
func (s Itemset) Has(item Item) bool {
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i] >= item })
	return i < len(s.items) && s.items[i] == item
}

// Key returns a string that identifies the itemset by content.
func (s Itemset) Key() string {
	var sb strings.Builder
	for i, item := range s.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(item), 10))
	}
	return sb.String()
}

// String renders the itemset as {a,b,c}.
func (s Itemset) String() string {
	return "{" + s.Key() + "}"
}

// Equal reports whether s and other contain the same items.
func (s Itemset) Equal(other Itemset) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every item of s is present in t.
func (s Itemset) SubsetOf(t Itemset) bool {
	return containsSorted(t.items, s.items)
}

// Union returns the items present in s or other.
func (s Itemset) Union(other Itemset) Itemset {
	out := make([]Item, 0, len(s.items)+len(other.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch {
		case s.items[i] < other.items[j]:
			out = append(out, s.items[i])
			i++
		case s.items[i] > other.items[j]:
			out = append(out, other.items[j])
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, other.items[j:]...)
	return Itemset{items: out}
}

// Difference returns the items of s that are not in other.
func (s Itemset) Difference(other Itemset) Itemset {
	out := make([]Item, 0, len(s.items))
	j := 0
	for _, item := range s.items {
		for j < len(other.items) && other.items[j] < item {
			j++
		}
		if j < len(other.items) && other.items[j] == item {
			continue
		}
		out = append(out, item)
	}
	return Itemset{items: out}
}

// ProperSubsets returns every non-empty proper subset of s. Bit b of the
// mask selects s.Items()[b], and masks run from 1 to 2^k-2, so the result
// has exactly 2^k-2 entries in mask order.
func (s Itemset) ProperSubsets() ([]Itemset, error) {
	k := len(s.items)
	if k > MaxSubsetSize {
		return nil, ErrTooLarge
	}
	if k < 2 {
		return nil, nil
	}

	full := uint64(1)<<uint(k) - 1
	subsets := make([]Itemset, 0, full-1)
	for mask := uint64(1); mask < full; mask++ {
		items := make([]Item, 0, k)
		for b := 0; b < k; b++ {
			if mask&(1<<uint(b)) != 0 {
				items = append(items, s.items[b])
			}
		}
		subsets = append(subsets, Itemset{items: items})
	}
	return subsets, nil
}

// containsSorted reports whether sorted slice sup contains every element of
// sorted slice sub.
func containsSorted(sup, sub []Item) bool {
	if len(sub) > len(sup) {
		return false
	}
	i := 0
	for _, want := range sub {
		for i < len(sup) && sup[i] < want {
			i++
		}
		if i == len(sup) || sup[i] != want {
			return false
		}
		i++
	}
	return true
}

// Less orders itemsets by size, then item by item. It gives levels and
// candidate lists a stable order independent of map iteration.
func Less(a, b Itemset) bool {
	if len(a.items) != len(b.items) {
		return len(a.items) < len(b.items)
	}
	for i := range a.items {
		if a.items[i] != b.items[i] {
			return a.items[i] < b.items[i]
		}
	}
	return false
}

// Sort orders sets in place using Less.
func Sort(sets []Itemset) {
	sort.Slice(sets, func(i, j int) bool { return Less(sets[i], sets[j]) })
}
