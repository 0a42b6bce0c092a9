package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/app/components"
	"github.com/avasyliev/booktrack/pkg/library"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the books in your library",
	Long:  "Display your library in a table, optionally restricted to one category: all, reading, read, want-to-read, favorite, by-genre, by-rating",
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		books, err := deps.Controller.RefreshLibrary(cmd.Context())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load library: %w", err))
		}

		if len(books) == 0 {
			fmt.Println("📚 Your library is empty. Use 'booktrack search' to find books to add.")
			return
		}

		filtered := library.FilterByCategory(books, listCategory)
		counts := library.CountsByCategory(books)

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
			Headers("#", "Title", "Author", "Genre", "Status", "Rating", "Progress")

		for i, book := range filtered {
			progress := ""
			if book.TotalPages > 0 {
				progress = fmt.Sprintf("%d%%", book.Progress)
			}
			t.Row(
				fmt.Sprintf("%d", i+1),
				truncateString(book.Title, 38),
				truncateString(book.Author, 24),
				truncateString(book.Genre, 16),
				book.Status,
				components.Stars(book.Rating),
				progress,
			)
		}

		fmt.Printf("\n📚 Library — %s (%d of %d)\n", listCategory, len(filtered), counts[library.CategoryAll])
		fmt.Println(t)
	},
}

func init() {
	categories := strings.Join(library.Categories, "|")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", library.CategoryAll, categories)
}
