package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/data"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Manage book quotes",
}

var quoteListCmd = &cobra.Command{
	Use:   "list [book-id]",
	Short: "List quotes, optionally for one book",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		quotes, err := deps.Client.Quotes(cmd.Context())
		if err != nil {
			cobra.CheckErr(err)
		}
		if len(args) == 1 {
			bookID, err := strconv.Atoi(args[0])
			if err != nil {
				cobra.CheckErr(fmt.Errorf("book id must be a number"))
			}
			var filtered []data.Quote
			for _, q := range quotes {
				if q.Book == bookID {
					filtered = append(filtered, q)
				}
			}
			quotes = filtered
		}
		if len(quotes) == 0 {
			fmt.Println("No quotes yet.")
			return
		}
		for _, q := range quotes {
			fmt.Printf("  [%d] (book %d) ❝%s❞\n", q.ID, q.Book, q.Content)
		}
	},
}

var quoteAddCmd = &cobra.Command{
	Use:   "add [book-id] [content]",
	Short: "Add a quote to a book",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		bookID, err := strconv.Atoi(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("book id must be a number"))
		}
		content := strings.Join(args[1:], " ")
		quote, err := deps.Client.AddQuote(cmd.Context(), data.Quote{Book: bookID, Content: content})
		if err != nil {
			cobra.CheckErr(err)
		}
		fmt.Printf("✅ Quote %d saved\n", quote.ID)
	},
}

var quoteDeleteCmd = &cobra.Command{
	Use:   "delete [quote-id]",
	Short: "Delete a quote",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("quote id must be a number"))
		}
		if err := deps.Client.DeleteQuote(cmd.Context(), id); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Println("🗑  Quote deleted")
	},
}

func init() {
	quoteCmd.AddCommand(quoteListCmd)
	quoteCmd.AddCommand(quoteAddCmd)
	quoteCmd.AddCommand(quoteDeleteCmd)
}
