// Package apriori implements level-wise frequent itemset mining and
// association rule derivation.
//
// Overview:
//
//   - The miner starts from the distinct 1-itemsets of a transaction set and
//     counts how many transactions contain each one. Candidates whose support
//     (count / N) reaches the minimum support form frequent level 1.
//   - Level k+1 candidates are the unions of pairs of frequent k-itemsets
//     whose size is exactly k+1. They are counted and filtered the same way.
//   - The loop stops at the first level with no frequent itemsets.
//   - Rules are derived from every frequent itemset I by splitting it into a
//     non-empty antecedent S and the complement I - S. A rule is kept when
//     count(I) / count(S), rounded to two decimals, reaches the minimum
//     confidence.
//
// State:
//
//   - FrequencyTable holds the count of every candidate ever evaluated in a
//     run, frequent or not. Counts are recorded once and reused; rule
//     derivation reads antecedent counts from it instead of rescanning.
//   - LevelMap holds the frequent itemsets of each level.
//   - Both are created per run. Nothing is shared between runs, so sweeping
//     several thresholds means running the whole pipeline once per value.
//
// Counting:
//
//   - The default counter scans every transaction for every candidate:
//     O(|candidates| * N * k) per level.
//   - WithIndex builds an item -> transaction id index once per run and
//     counts a candidate by intersecting the id lists of its items. Results
//     are identical to the scan.
//
// Cancellation:
//
//   - Miner.Run checks its context between levels. A cancelled run returns
//     the context error and no partial result.
//
// Errors (sentinel):
//
//   - ErrMissingSupport: rule derivation needed the count of an itemset that
//     was never evaluated. Under level-wise execution every subset of a
//     frequent itemset is itself frequent and therefore counted at its own
//     level, so this signals a broken invariant rather than bad input.
//
// Example usage:
//
//	txs, seed := itemset.BuildTransactions(records)
//	res, err := apriori.New(apriori.WithIndex()).Run(ctx, txs, seed, 0.5)
//	if err != nil {
//	    return err
//	}
//	rules, summary, err := apriori.DeriveRules(res.Levels, res.Frequencies, dict,
//	    apriori.Thresholds{MinSupport: 0.5, MinConfidence: 0.75}, res.Transactions)
package apriori
