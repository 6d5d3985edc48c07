package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/blackwell-systems/arules/internal/analyzer"
	"github.com/blackwell-systems/arules/internal/apriori"
	"github.com/blackwell-systems/arules/internal/config"
	"github.com/blackwell-systems/arules/internal/dataset"
	"github.com/blackwell-systems/arules/internal/output"
	"github.com/blackwell-systems/arules/internal/store"
	"github.com/spf13/cobra"
)

// addInputFlags registers the flags selecting the dataset.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "dataset file (.arff, .csv or SQLite database)")
	cmd.Flags().String("format", "", "input format: arff, csv or sqlite (default: from the file extension)")
	cmd.Flags().String("table", "", "table to read from a SQLite database")
}

// addMineFlags registers the thresholds and report flags shared by mine and
// watch.
func addMineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "report file (default: stdout)")
	cmd.Flags().Float64P("support", "s", config.DefaultSupport, "minimum support in (0, 1]; 0 uses the default")
	cmd.Flags().Float64P("confidence", "c", config.DefaultConfidence, "minimum confidence in [0, 1]; 0 uses the default")
	cmd.Flags().Bool("index", false, "count support with an inverted index")
	cmd.Flags().Int("top", 10, "rules shown in the terminal table when the report goes to a file (0 for all)")
}

// loadRelation decodes the configured input.
func loadRelation(c *config.Config) (*dataset.Relation, error) {
	if c.Format != config.FormatSQLite {
		return dataset.ReadFile(c.Input, c.Format)
	}

	// Opening a missing path would create an empty database.
	if _, err := os.Stat(c.Input); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	st, err := store.New(c.Input)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	rel, err := st.LoadRelation(c.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s from %s: %w", c.Table, c.Input, err)
	}
	return rel, nil
}

func newAnalyzer(c *config.Config) *analyzer.Analyzer {
	return analyzer.New(
		analyzer.WithLogger(slog.Default()),
		analyzer.WithIndex(c.Index),
	)
}

func thresholds(c *config.Config) apriori.Thresholds {
	return apriori.Thresholds{MinSupport: c.Support, MinConfidence: c.Confidence}
}

// mineOnce loads, mines and reports once.
func mineOnce(cmd *cobra.Command, c *config.Config) error {
	out := cmd.OutOrStdout()

	var spinner *output.Spinner
	if c.Output != "" {
		spinner = output.NewSpinner(fmt.Sprintf("Mining %s", c.Input))
		spinner.SetWriter(cmd.ErrOrStderr())
		spinner.Start()
		defer spinner.Stop()
	}

	rel, err := loadRelation(c)
	if err != nil {
		return err
	}

	res, err := newAnalyzer(c).Mine(cmd.Context(), rel, thresholds(c))
	if err != nil {
		return err
	}

	if c.Output == "" {
		return output.WriteReport(out, res)
	}

	if err := writeReportFile(c.Output, res); err != nil {
		return err
	}
	spinner.Stop()

	fmt.Fprintf(out, "Wrote %d rules from %d instances to %s in %s\n",
		len(res.Rules), res.Instances, c.Output, res.Elapsed.Round(time.Microsecond))
	fmt.Fprintln(out, output.RenderTierSummary(res.TierCounts()))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderRuleTable(res.Rules, c.Top))
	return nil
}

func writeReportFile(path string, res *analyzer.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := output.WriteReport(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
