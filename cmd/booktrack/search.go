package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var searchField string

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the external catalog",
	Long:  "Search the external book catalog and display results in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		query := strings.Join(args, " ")
		results, err := deps.Controller.Search(cmd.Context(), query, searchField)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return
		}

		var (
			blue = lipgloss.Color("#5B9BD5")

			headerStyle = lipgloss.NewStyle().Foreground(blue).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(blue)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Author", "Genre", "Year", "Pages")

		for i, r := range results {
			year := ""
			if r.Year != 0 {
				year = fmt.Sprintf("%d", r.Year)
			}
			pages := ""
			if r.Pages != 0 {
				pages = fmt.Sprintf("%d", r.Pages)
			}
			t.Row(fmt.Sprintf("%d", i+1), truncateString(r.Title, 40), truncateString(r.Author, 24), truncateString(r.Genre, 16), year, pages)
		}

		fmt.Println(t)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchField, "field", "f", "all", "Restrict the search to one field: all|title|author|genre")
}
