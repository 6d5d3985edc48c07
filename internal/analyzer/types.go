package analyzer

import (
	"time"

	"github.com/blackwell-systems/arules/internal/apriori"
	"github.com/blackwell-systems/arules/internal/dataset"
)

// Result is the outcome of one mining run over a relation.
type Result struct {
	Relation    string
	Rules       []apriori.Rule // descending confidence
	Summary     string         // per-level itemset counts
	Levels      apriori.LevelMap
	Frequencies *apriori.FrequencyTable
	Dictionary  *dataset.Dictionary
	Thresholds  apriori.Thresholds
	Instances   int
	Elapsed     time.Duration // mining and rule derivation only
}

// SweepOptions configures a support sweep.
type SweepOptions struct {
	Start         float64 // first minimum support
	Delta         float64 // decrement per step
	Lower         float64 // exclusive lower bound
	MinConfidence float64
}

// SweepPoint records one support value of a sweep.
type SweepPoint struct {
	MinSupport float64
	Itemsets   int
	Rules      int
	Elapsed    time.Duration
}
