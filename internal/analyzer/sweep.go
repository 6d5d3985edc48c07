package analyzer

import (
	"context"
	"math"

	"github.com/blackwell-systems/arules/internal/apriori"
	"github.com/blackwell-systems/arules/internal/dataset"
)

// SupportSteps returns start, start-delta, start-2*delta, ... while the
// value stays above lower. Step i is start-i*delta rounded to 1e-9.
func SupportSteps(start, delta, lower float64) []float64 {
	if delta <= 0 {
		return nil
	}
	var steps []float64
	for i := 0; ; i++ {
		s := math.Round((start-float64(i)*delta)*1e9) / 1e9
		if s <= lower {
			break
		}
		steps = append(steps, s)
	}
	return steps
}

// Sweep mines rel once per support value of SupportSteps, each run with
// fresh state, and records the itemset count, rule count and elapsed time
// of every run. progress, when non-nil, is called after each run with the
// number of completed and total runs.
func (a *Analyzer) Sweep(ctx context.Context, rel *dataset.Relation, opts SweepOptions, progress func(done, total int)) ([]SweepPoint, error) {
	steps := SupportSteps(opts.Start, opts.Delta, opts.Lower)
	enc := encode(rel)

	points := make([]SweepPoint, 0, len(steps))
	for i, s := range steps {
		res, err := a.mine(ctx, enc, apriori.Thresholds{MinSupport: s, MinConfidence: opts.MinConfidence})
		if err != nil {
			return points, err
		}
		points = append(points, SweepPoint{
			MinSupport: s,
			Itemsets:   res.Levels.Total(),
			Rules:      len(res.Rules),
			Elapsed:    res.Elapsed,
		})
		if progress != nil {
			progress(i+1, len(steps))
		}
	}
	return points, nil
}
