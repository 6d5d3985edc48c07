package app

import (
	"fmt"

	"github.com/blackwell-systems/arules/internal/dataset"
	"github.com/blackwell-systems/arules/internal/output"
	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the items of a dataset",
	Long: `Show the item dictionary of a dataset: every attribute=value label with its
item code and the number and fraction of instances containing it.

Codes are assigned from 1 in the order the labels first appear, row by
row, exactly as mine encodes the dataset.`,
	Example: `  arules items -i vote.arff`,
	RunE:    runItems,
}

func init() {
	addInputFlags(itemsCmd)
}

func runItems(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateInput(); err != nil {
		return err
	}

	rel, err := loadRelation(cfg)
	if err != nil {
		return err
	}
	_, dict := dataset.Encode(rel)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d items over %d attributes and %d instances\n\n",
		dict.Len(), len(rel.Attributes), rel.Instances())
	fmt.Fprint(out, output.RenderItemTable(dict.Entries(), rel.Instances()))
	return nil
}
