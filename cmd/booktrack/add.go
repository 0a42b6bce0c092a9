package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addField string

var addCmd = &cobra.Command{
	Use:   "add [query]",
	Short: "Add a book to your library",
	Long:  "Search the external catalog and add the first match to your want-to-read shelf",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		query := strings.Join(args, " ")
		fmt.Printf("🔍 Searching for '%s'...\n", query)

		results, err := deps.Controller.Search(cmd.Context(), query, addField)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}
		if len(results) == 0 {
			fmt.Println("❌ No results found.")
			return
		}

		result := results[0]
		fmt.Printf("✅ Found: %s by %s\n", result.Title, result.Author)

		book, err := deps.Controller.AddFromSearch(cmd.Context(), result)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to add book: %w", err))
		}

		fmt.Printf("✅ Added '%s' to your library (id %d, %s)\n", book.Title, book.ID, book.Status)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addField, "field", "f", "all", "Restrict the search to one field: all|title|author|genre")
}
