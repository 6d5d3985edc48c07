package itemset

import (
	"fmt"
	"strconv"
	"strings"
)

// Transaction is one input record: an immutable set of unique items.
type Transaction struct {
	Itemset
}

// TransactionSet is the ordered sequence of transactions of one run. Its
// length is the support denominator.
type TransactionSet []Transaction

// NewTransaction builds a transaction from items. Duplicates are collapsed.
func NewTransaction(items ...Item) Transaction {
	return Transaction{Itemset: New(items...)}
}

// ParseTransaction builds a transaction from a delimited record of integer
// item identifiers such as "3,7,12". Blank tokens are skipped.
func ParseTransaction(record, sep string) (Transaction, error) {
	fields := strings.Split(record, sep)
	items := make([]Item, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid item identifier %q: %w", f, err)
		}
		items = append(items, Item(v))
	}
	return NewTransaction(items...), nil
}

// Contains reports whether every item of s appears in the transaction.
func (t Transaction) Contains(s Itemset) bool {
	return s.SubsetOf(t.Itemset)
}

// BuildTransactions converts decoded records into a transaction set and
// collects the distinct 1-itemsets observed across all records, in
// ascending item order. The 1-itemsets seed the first Apriori level.
func BuildTransactions(records [][]Item) (TransactionSet, []Itemset) {
	txs := make(TransactionSet, 0, len(records))
	seen := make(map[Item]struct{})
	for _, rec := range records {
		tx := NewTransaction(rec...)
		txs = append(txs, tx)
		for _, item := range tx.items {
			seen[item] = struct{}{}
		}
	}

	distinct := make([]Item, 0, len(seen))
	for item := range seen {
		distinct = append(distinct, item)
	}
	ordered := New(distinct...)

	seed := make([]Itemset, 0, ordered.Len())
	for _, item := range ordered.items {
		seed = append(seed, Singleton(item))
	}
	return txs, seed
}
