package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalogo/katalogo-cli/cmd/commands"
	"github.com/katalogo/katalogo-cli/pkg/files"
	"github.com/katalogo/katalogo-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var settingsPath string

var rootCmd = &cobra.Command{
	Use:   "katalogo",
	Short: "Terminal browser for a product catalog with live search and label filters",
	Long: `Katalogo is a terminal browser for a markdown-based product catalog.
It offers incremental, diacritic-insensitive search with ranked
suggestions, committed-search result views and label filtering, across
the whole catalog or scoped to a single category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := files.LoadSettings(settingsPath)
		if err != nil {
			return err
		}

		app := tui.NewApp(settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Katalogo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Katalogo version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", files.SettingsFile, "Path of the settings file")
	rootCmd.AddCommand(commands.NewIndexCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewLabelsCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
