// Package output provides terminal output utilities for arules.
//
// This package includes:
//   - The rule report written by mine and watch
//   - Table rendering for rules, sweep points and the item dictionary
//   - Progress bars for sweeps and spinners for single runs
//
// Tables use ANSI color codes only when stdout is a terminal and NO_COLOR is
// unset. Progress indicators are safe for concurrent use.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/arules/internal/analyzer"
	"github.com/blackwell-systems/arules/internal/apriori"
	"github.com/blackwell-systems/arules/internal/dataset"
)

// ANSI color codes for confidence tier display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// getTierColor returns the ANSI color code for a confidence tier.
func getTierColor(tier string) string {
	switch tier {
	case analyzer.TierStrong:
		return colorGreen
	case analyzer.TierModerate:
		return colorYellow
	case analyzer.TierWeak:
		return colorRed
	default:
		return colorGray
	}
}

// FormatRule renders the rule body: "a=y b=n ==> c=y".
func FormatRule(r apriori.Rule) string {
	return strings.Join(r.AntecedentLabels, " ") + " ==> " + strings.Join(r.ConsequentLabels, " ")
}

// RenderRuleTable renders the first top rules (all of them when top <= 0).
// Rules are shown in the order given.
func RenderRuleTable(rules []apriori.Rule, top int) string {
	if len(rules) == 0 {
		return "No rules found.\n"
	}

	shown := rules
	if top > 0 && top < len(rules) {
		shown = rules[:top]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-6s %-6s %-9s %s\n",
		"#", "Conf", "Supp", "Count", "Rule"))
	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")

	for i, r := range shown {
		conf := fmt.Sprintf("%-6.2f", r.Confidence)
		sb.WriteString(fmt.Sprintf("%-5d %s %-6.2f %-9s %s\n",
			i+1,
			colorize(getTierColor(analyzer.ClassifyConfidence(r.Confidence)), conf),
			r.Support,
			fmt.Sprintf("%d/%d", r.ItemsetCount, r.AntecedentCount),
			truncate(FormatRule(r), 60)))
	}

	if len(shown) < len(rules) {
		sb.WriteString(colorize(colorGray, fmt.Sprintf("... %d more rules in the report\n", len(rules)-len(shown))))
	}
	return sb.String()
}

// RenderTierSummary renders a one-line breakdown of rule counts per tier.
// Format: "STRONG: 5 · MODERATE: 19 · WEAK: 3"
func RenderTierSummary(counts map[string]int) string {
	tiers := []string{analyzer.TierStrong, analyzer.TierModerate, analyzer.TierWeak}
	parts := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		parts = append(parts, fmt.Sprintf("%s: %d",
			colorize(getTierColor(tier), strings.ToUpper(tier)), counts[tier]))
	}
	return strings.Join(parts, " · ")
}

// RenderSweepTable renders one row per sweep point.
func RenderSweepTable(points []analyzer.SweepPoint) string {
	if len(points) == 0 {
		return "No support values above the lower bound.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-9s %-10s %-8s %s\n",
		"Support", "Itemsets", "Rules", "Elapsed"))
	sb.WriteString(strings.Repeat("─", 44))
	sb.WriteString("\n")

	for _, p := range points {
		sb.WriteString(fmt.Sprintf("%-9.2f %-10d %-8d %s\n",
			p.MinSupport, p.Itemsets, p.Rules, formatDuration(p.Elapsed)))
	}
	return sb.String()
}

// RenderItemTable renders the item dictionary with each item's support
// over instances rows.
func RenderItemTable(entries []dataset.Entry, instances int) string {
	if len(entries) == 0 {
		return "No items found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-6s %-40s %-7s %s\n",
		"Code", "Item", "Count", "Support"))
	sb.WriteString(strings.Repeat("─", 66))
	sb.WriteString("\n")

	for _, e := range entries {
		support := 0.0
		if instances > 0 {
			support = float64(e.Count) / float64(instances)
		}
		sb.WriteString(fmt.Sprintf("%-6d %-40s %-7d %.2f\n",
			e.Code, truncate(e.Label, 40), e.Count, apriori.Round2(support)))
	}
	return sb.String()
}

// formatDuration renders d with a unit suited to its size.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// truncate truncates a string to at most maxLen bytes, adding "..." if
// truncated. It never splits a rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:runeBoundary(s, maxLen)]
	}
	return s[:runeBoundary(s, maxLen-3)] + "..."
}

// runeBoundary returns the largest rune start in s at or before n.
func runeBoundary(s string, n int) int {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}
