package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalogo/katalogo-cli/internal/cli"
	"github.com/katalogo/katalogo-cli/pkg/files"
	"github.com/katalogo/katalogo-cli/pkg/search"
)

// SearchOutput represents the formatted search results
type SearchOutput struct {
	Query   string             `json:"query" yaml:"query"`
	Count   int                `json:"count" yaml:"count"`
	Results []SearchItemOutput `json:"results" yaml:"results"`
}

// SearchItemOutput represents a single search result item
type SearchItemOutput struct {
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	URL      string  `json:"url" yaml:"url"`
	Score    float64 `json:"score" yaml:"score"`
}

var (
	searchIndexPath  string
	searchMaxResults int
	searchFormat     string
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the product index",
		Long: `Search product titles the same way the interactive catalog search
does: case- and diacritic-insensitive, prefix matches ranked before
substring matches, ties broken by Czech collation.

Examples:
  # Suggestions for a partial query
  katalogo search jabl

  # Machine-readable output
  katalogo search "šťáva" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			products, err := files.ReadIndex(searchIndexPath)
			if err != nil {
				return err
			}

			matches := search.Search(products, query, searchMaxResults, search.DefaultMinChars)

			output := SearchOutput{
				Query:   query,
				Count:   len(matches),
				Results: make([]SearchItemOutput, 0, len(matches)),
			}
			for _, m := range matches {
				output.Results = append(output.Results, SearchItemOutput{
					Title:    m.Product.Title,
					Category: m.Product.Category,
					URL:      m.Product.URL,
					Score:    m.Score,
				})
			}

			if cli.OutputFormat(searchFormat) != cli.FormatText {
				return cli.OutputResults(os.Stdout, searchFormat, output)
			}

			if len(matches) == 0 {
				fmt.Println("No results")
				return nil
			}

			table := cli.NewTableFormatter(os.Stdout)
			table.Header("TITLE", "CATEGORY", "SCORE")
			for _, r := range output.Results {
				table.Row(cli.TruncateString(r.Title, 40), r.Category, fmt.Sprintf("%.1f", r.Score))
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&searchIndexPath, "index", files.IndexFile, "Path of the index artifact")
	cmd.Flags().IntVarP(&searchMaxResults, "max", "m", search.DefaultMaxResults, "Maximum number of results")
	cmd.Flags().StringVarP(&searchFormat, "format", "f", "text", "Output format: text, json or yaml")
	return cmd
}
