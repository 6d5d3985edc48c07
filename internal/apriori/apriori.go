package apriori

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blackwell-systems/arules/internal/itemset"
)

// Option configures a Miner.
type Option func(*Miner)

// WithIndex makes the miner count support through an item -> transaction
// index instead of scanning every transaction per candidate.
func WithIndex() Option {
	return func(m *Miner) {
		m.useIndex = true
	}
}

// WithLogger sets the logger used for per-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Miner) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Miner runs the Apriori level-wise search. A Miner holds only options; all
// run state is created inside Run, so one Miner may serve many runs.
type Miner struct {
	useIndex bool
	logger   *slog.Logger
}

// New creates a Miner with the given options.
func New(opts ...Option) *Miner {
	m := &Miner{logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run mines txs with the default options.
func Run(ctx context.Context, txs itemset.TransactionSet, seed []itemset.Itemset, minSupport float64) (*Result, error) {
	return New().Run(ctx, txs, seed, minSupport)
}

// Run evaluates seed as level 1, then generates, counts and filters one level
// at a time until a level has no frequent itemsets. minSupport is assumed to
// be validated by the caller.
func (m *Miner) Run(ctx context.Context, txs itemset.TransactionSet, seed []itemset.Itemset, minSupport float64) (*Result, error) {
	res := &Result{
		Levels:       make(LevelMap),
		Frequencies:  NewFrequencyTable(),
		Transactions: len(txs),
	}

	var counter supportCounter = scanCounter{txs: txs}
	if m.useIndex {
		counter = NewIndex(txs)
	}

	candidates := seed
	for k := 1; len(candidates) > 0; k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("apriori cancelled before level %d: %w", k, err)
		}

		frequent := countAndFilter(candidates, counter, len(txs), minSupport, res.Frequencies)
		m.logger.Debug("apriori level evaluated",
			"level", k,
			"candidates", len(candidates),
			"frequent", len(frequent))
		if len(frequent) == 0 {
			break
		}

		res.Levels[k] = frequent
		candidates = GenerateCandidates(frequent, k+1)
	}

	m.logger.Debug("apriori finished",
		"levels", len(res.Levels),
		"frequent", res.Levels.Total(),
		"counted", res.Frequencies.Len())
	return res, nil
}
