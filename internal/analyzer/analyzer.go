// Package analyzer runs the mining pipeline over decoded relations: encode,
// build transactions, mine frequent itemsets, derive and rank rules.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackwell-systems/arules/internal/apriori"
	"github.com/blackwell-systems/arules/internal/dataset"
	"github.com/blackwell-systems/arules/internal/itemset"
)

// Analyzer mines association rules from relations.
type Analyzer struct {
	logger   *slog.Logger
	useIndex bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger passed down to the miner.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithIndex makes the miner count support through an inverted index.
func WithIndex(enabled bool) Option {
	return func(a *Analyzer) {
		a.useIndex = enabled
	}
}

// New creates a new Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) miner() *apriori.Miner {
	opts := []apriori.Option{apriori.WithLogger(a.logger)}
	if a.useIndex {
		opts = append(opts, apriori.WithIndex())
	}
	return apriori.New(opts...)
}

// encoded is a relation turned into transactions once, ready for any
// number of runs.
type encoded struct {
	name string
	txs  itemset.TransactionSet
	seed []itemset.Itemset
	dict *dataset.Dictionary
}

func encode(rel *dataset.Relation) *encoded {
	records, dict := dataset.Encode(rel)
	txs, seed := itemset.BuildTransactions(records)
	return &encoded{name: rel.Name, txs: txs, seed: seed, dict: dict}
}

// Mine runs the full pipeline over rel.
func (a *Analyzer) Mine(ctx context.Context, rel *dataset.Relation, th apriori.Thresholds) (*Result, error) {
	enc := encode(rel)
	a.logger.Debug("relation encoded",
		"relation", enc.name,
		"instances", len(enc.txs),
		"items", enc.dict.Len())

	return a.mine(ctx, enc, th)
}

func (a *Analyzer) mine(ctx context.Context, enc *encoded, th apriori.Thresholds) (*Result, error) {
	start := time.Now()

	mined, err := a.miner().Run(ctx, enc.txs, enc.seed, th.MinSupport)
	if err != nil {
		return nil, fmt.Errorf("failed to mine frequent itemsets: %w", err)
	}

	rules, summary, err := apriori.DeriveRules(mined.Levels, mined.Frequencies, enc.dict, th, mined.Transactions)
	if err != nil {
		return nil, fmt.Errorf("failed to derive rules: %w", err)
	}
	apriori.SortByConfidence(rules)

	res := &Result{
		Relation:    enc.name,
		Rules:       rules,
		Summary:     summary,
		Levels:      mined.Levels,
		Frequencies: mined.Frequencies,
		Dictionary:  enc.dict,
		Thresholds:  th,
		Instances:   mined.Transactions,
		Elapsed:     time.Since(start),
	}

	a.logger.Debug("mining finished",
		"relation", res.Relation,
		"min_support", th.MinSupport,
		"min_confidence", th.MinConfidence,
		"itemsets", res.Levels.Total(),
		"rules", len(res.Rules),
		"elapsed", res.Elapsed)
	return res, nil
}
