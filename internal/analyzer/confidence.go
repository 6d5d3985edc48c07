package analyzer

// Confidence tiers used to group and color rules.
const (
	TierStrong   = "strong"
	TierModerate = "moderate"
	TierWeak     = "weak"
)

// ClassifyConfidence maps a rule confidence to its tier:
//   - "strong" when confidence >= 0.9
//   - "moderate" when confidence >= 0.75
//   - "weak" otherwise
func ClassifyConfidence(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return TierStrong
	case confidence >= 0.75:
		return TierModerate
	default:
		return TierWeak
	}
}

// TierCounts counts the rules per confidence tier.
func (r *Result) TierCounts() map[string]int {
	counts := map[string]int{TierStrong: 0, TierModerate: 0, TierWeak: 0}
	for _, rule := range r.Rules {
		counts[ClassifyConfidence(rule.Confidence)]++
	}
	return counts
}
