package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/blackwell-systems/arules/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile string

	// cfg holds the settings of the running command, loaded by initConfig.
	cfg *config.Config

	// RootCmd is the root command for arules
	RootCmd = &cobra.Command{
		Use:   "arules",
		Short: "Frequent itemsets and association rules with Apriori",
		Long: `arules mines frequent itemsets from a categorical dataset with the Apriori
level-wise search and reports the association rules that meet a minimum
support and a minimum confidence.

Every attribute value of a row becomes an item labelled attribute=value;
missing values ('?' in ARFF, empty cells in CSV, NULL in SQLite) contribute
no item.

Examples:
  # Mine rules with the default thresholds (support 0.5, confidence 0.75)
  arules mine -i vote.arff

  # Write the report to a file and show the ten best rules
  arules mine -i vote.arff -o rules.txt -s 0.4 -c 0.9

  # Measure how rule counts and runtime grow as support drops
  arules sweep -i vote.arff --delta 0.05 --lower 0.2

  # Rerun whenever the dataset changes
  arules watch -i vote.arff -o rules.txt`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/arules/config.yaml)")
	RootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(mineCmd)
	RootCmd.AddCommand(sweepCmd)
	RootCmd.AddCommand(watchCmd)
	RootCmd.AddCommand(itemsCmd)
	RootCmd.AddCommand(importCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which commands use for
// cancellation.
func ExecuteContext(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// flagKeys maps viper keys to the flag names that set them.
var flagKeys = map[string]string{
	"input":          "input",
	"output":         "output",
	"format":         "format",
	"table":          "table",
	"support":        "support",
	"confidence":     "confidence",
	"index":          "index",
	"top":            "top",
	"sweep.start":    "start",
	"sweep.delta":    "delta",
	"sweep.lower":    "lower",
	"logging.level":  "log-level",
	"logging.format": "log-format",
}

func initConfig(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	if err := setupLogging(cmd.ErrOrStderr(), cfg.Logging); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

// newViper layers the config file, ARULES_* environment variables and the
// flags of cmd.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := config.Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("ARULES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}
	return v, nil
}

func setupLogging(w io.Writer, lc config.LoggingConfig) error {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", lc.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch lc.Format {
	case "console":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("invalid log format: %s", lc.Format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
