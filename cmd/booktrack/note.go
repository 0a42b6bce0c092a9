package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/data"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage book notes",
}

var noteListCmd = &cobra.Command{
	Use:   "list [book-id]",
	Short: "List notes, optionally for one book",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		notes, err := deps.Client.Notes(cmd.Context())
		if err != nil {
			cobra.CheckErr(err)
		}
		if len(args) == 1 {
			bookID, err := strconv.Atoi(args[0])
			if err != nil {
				cobra.CheckErr(fmt.Errorf("book id must be a number"))
			}
			var filtered []data.Note
			for _, n := range notes {
				if n.Book == bookID {
					filtered = append(filtered, n)
				}
			}
			notes = filtered
		}
		if len(notes) == 0 {
			fmt.Println("No notes yet.")
			return
		}
		for _, n := range notes {
			fmt.Printf("  [%d] (book %d) %s\n", n.ID, n.Book, n.Content)
		}
	},
}

var noteAddCmd = &cobra.Command{
	Use:   "add [book-id] [content]",
	Short: "Add a note to a book",
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
		note, err := deps.Client.AddNote(cmd.Context(), data.Note{Book: bookID, Content: content})
		if err != nil {
			cobra.CheckErr(err)
		}
		fmt.Printf("✅ Note %d saved\n", note.ID)
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [note-id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("note id must be a number"))
		}
		if err := deps.Client.DeleteNote(cmd.Context(), id); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Println("🗑  Note deleted")
	},
}

func init() {
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}
