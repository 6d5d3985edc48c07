package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackwell-systems/arules/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Rerun mining whenever the dataset changes",
		Long: `Mine the dataset once, then watch the input file and mine it again after
every change until interrupted.

Each rerun starts from fresh state and rewrites the report. A burst of
writes (an editor saving, a script appending rows) triggers a single
rerun once the file has been quiet for --debounce. A failed rerun, for
example on a malformed row, is logged and the watch continues.`,
		Example: `  # Keep rules.txt current while editing vote.arff (Ctrl+C to stop)
  arules watch -i vote.arff -o rules.txt

  # Watch a SQLite database
  arules watch -i baskets.db --table baskets -o rules.txt`,
		RunE: runWatch,
	}
)

func init() {
	addInputFlags(watchCmd)
	addMineFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before a rerun")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c := cfg
	out := cmd.OutOrStdout()

	rerun := func(ctx context.Context) error {
		if err := mineOnce(cmd, c); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nUpdated %s. Watching %s for changes (Ctrl+C to stop)\n",
			time.Now().Format("15:04:05"), c.Input)
		return nil
	}

	w, err := watcher.New(c.Input, rerun,
		watcher.WithDebounce(watchDebounce),
		watcher.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	if err := rerun(cmd.Context()); err != nil {
		slog.Error("initial run failed", "input", c.Input, "error", err)
		fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)\n", c.Input)
	}

	if err := w.Run(cmd.Context()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", c.Input, err)
	}
	fmt.Fprintln(out, "Stopped watching.")
	return nil
}
