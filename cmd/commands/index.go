package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalogo/katalogo-cli/pkg/files"
)

var indexOutput string

// NewIndexCommand creates the index command
func NewIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [content-root]",
		Short: "Build the product search index",
		Long: `Walk the product content tree and write the JSON search index
consumed by catalog search.

Product files are markdown with YAML front matter. A file needs title,
category and slug to be indexed; files missing any of them are skipped,
files that fail to parse are reported and skipped. The build never fails
on bad content.

Examples:
  # Index the content tree in the current directory
  katalogo index

  # Index a specific site checkout and choose the artifact path
  katalogo index ./site --output dist/products-index.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			products, warnings, err := files.BuildIndex(root)
			if err != nil {
				return fmt.Errorf("failed to build index: %w", err)
			}

			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
			}

			if err := files.WriteIndex(indexOutput, products); err != nil {
				return err
			}

			fmt.Printf("✓ Search index: %d products → %s\n", len(products), indexOutput)
			return nil
		},
	}

	cmd.Flags().StringVarP(&indexOutput, "output", "o", files.IndexFile, "Path of the index artifact")
	return cmd
}
