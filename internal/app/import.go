package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/arules/internal/config"
	"github.com/blackwell-systems/arules/internal/dataset"
	"github.com/blackwell-systems/arules/internal/output"
	"github.com/blackwell-systems/arules/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy an ARFF or CSV dataset into a SQLite table",
	Long: `Decode an ARFF or CSV dataset and store it in a SQLite database, one TEXT
column per attribute and NULL for missing values. An existing table of the
same name is replaced.

The table defaults to the ARFF relation name, or the file name without its
extension. The stored table can then be mined with --format sqlite.`,
	Example: `  arules import -i vote.arff -o datasets.db
  arules mine -i datasets.db --table vote`,
	RunE: runImport,
}

func init() {
	addInputFlags(importCmd)
	importCmd.Flags().StringP("output", "o", "", "SQLite database to write")
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateInput(); err != nil {
		return err
	}
	if cfg.Format == config.FormatSQLite {
		return fmt.Errorf("%w: import reads arff or csv", config.ErrUnknownFormat)
	}
	if cfg.Output == "" {
		return errors.New("import needs a database path (--output)")
	}

	out := cmd.OutOrStdout()
	spinner := output.NewSpinner(fmt.Sprintf("Reading %s", cfg.Input))
	spinner.SetWriter(out)
	spinner.Start()
	defer spinner.Stop()

	rel, err := dataset.ReadFile(cfg.Input, cfg.Format)
	if err != nil {
		return err
	}

	table := cfg.Table
	if table == "" {
		table = rel.Name
	}
	if table == "" {
		base := filepath.Base(cfg.Input)
		table = strings.TrimSuffix(base, filepath.Ext(base))
	}

	spinner.UpdateMessage(fmt.Sprintf("Writing %d instances to %s", rel.Instances(), cfg.Output))

	st, err := store.New(cfg.Output)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.WriteRelation(table, rel); err != nil {
		return err
	}

	spinner.StopWithMessage(fmt.Sprintf("Imported %d instances of %d attributes into %s (table %s)",
		rel.Instances(), len(rel.Attributes), cfg.Output, table))
	return nil
}
