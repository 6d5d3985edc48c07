package app

import (
	"fmt"

	"github.com/blackwell-systems/arules/internal/analyzer"
	"github.com/blackwell-systems/arules/internal/config"
	"github.com/blackwell-systems/arules/internal/output"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Time mining runs over decreasing minimum support",
	Long: `Run the full mining pipeline once per support value, starting at --start
and decreasing by --delta while the support stays above --lower. Each run
starts from fresh state.

For every support value the sweep reports the number of frequent itemsets,
the number of rules meeting --confidence and the time spent mining and
deriving rules.`,
	Example: `  # 1.00, 0.95, ..., 0.25
  arules sweep -i vote.arff --delta 0.05 --lower 0.2

  # Fixed confidence, coarser steps
  arules sweep -i vote.arff --delta 0.1 --lower 0.3 -c 0.9`,
	RunE: runSweep,
}

func init() {
	addInputFlags(sweepCmd)
	sweepCmd.Flags().Float64P("confidence", "c", config.DefaultConfidence, "minimum confidence in [0, 1]; 0 uses the default")
	sweepCmd.Flags().Bool("index", false, "count support with an inverted index")
	sweepCmd.Flags().Float64("start", 1.0, "first minimum support")
	sweepCmd.Flags().Float64P("delta", "d", 0, "support decrement per run")
	sweepCmd.Flags().Float64P("lower", "l", 0, "exclusive lower bound of the support")
}

func runSweep(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateSweep(); err != nil {
		return err
	}

	rel, err := loadRelation(cfg)
	if err != nil {
		return err
	}

	opts := analyzer.SweepOptions{
		Start:         cfg.Sweep.Start,
		Delta:         cfg.Sweep.Delta,
		Lower:         cfg.Sweep.Lower,
		MinConfidence: cfg.Confidence,
	}
	steps := analyzer.SupportSteps(opts.Start, opts.Delta, opts.Lower)

	progress := output.NewProgress(len(steps), "Sweeping support")
	progress.SetWriter(cmd.ErrOrStderr())

	points, err := newAnalyzer(cfg).Sweep(cmd.Context(), rel, opts, func(done, total int) {
		if done < total {
			progress.Describe(fmt.Sprintf("Sweeping support (next %.2f)", steps[done]))
		} else {
			progress.Describe("Sweep complete")
		}
		progress.SetCurrent(done)
	})
	if err != nil {
		return fmt.Errorf("sweep stopped after %d of %d runs: %w", len(points), len(steps), err)
	}
	progress.Finish()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Support sweep over %s (%d instances, confidence %.2f)\n\n",
		cfg.Input, rel.Instances(), cfg.Confidence)
	fmt.Fprint(out, output.RenderSweepTable(points))
	return nil
}
