package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalogo/katalogo-cli/internal/cli"
	"github.com/katalogo/katalogo-cli/pkg/files"
)

// LabelsOutput represents the label listing
type LabelsOutput struct {
	Labels []LabelCount `json:"labels" yaml:"labels"`
}

// LabelCount is one label with its product count
type LabelCount struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

var (
	labelsIndexPath string
	labelsFormat    string
)

// NewLabelsCommand creates the labels command
func NewLabelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List category labels with product counts",
		Long: `List every label used in the product index together with the number
of products carrying it. Useful for checking which filter chips the
catalog pages will offer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := files.ReadIndex(labelsIndexPath)
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, p := range products {
				for _, l := range p.Labels {
					counts[l]++
				}
			}

			output := LabelsOutput{Labels: make([]LabelCount, 0, len(counts))}
			for label, count := range counts {
				output.Labels = append(output.Labels, LabelCount{Label: label, Count: count})
			}
			sort.Slice(output.Labels, func(i, j int) bool {
				if output.Labels[i].Count != output.Labels[j].Count {
					return output.Labels[i].Count > output.Labels[j].Count
				}
				return output.Labels[i].Label < output.Labels[j].Label
			})

			if cli.OutputFormat(labelsFormat) != cli.FormatText {
				return cli.OutputResults(os.Stdout, labelsFormat, output)
			}

			if len(output.Labels) == 0 {
				fmt.Println("No labels")
				return nil
			}

			table := cli.NewTableFormatter(os.Stdout)
			table.Header("LABEL", "PRODUCTS")
			for _, l := range output.Labels {
				table.Row(l.Label, fmt.Sprintf("%d", l.Count))
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&labelsIndexPath, "index", files.IndexFile, "Path of the index artifact")
	cmd.Flags().StringVarP(&labelsFormat, "format", "f", "text", "Output format: text, json or yaml")
	return cmd
}
