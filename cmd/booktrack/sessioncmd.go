package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session [book-id] [minutes] [note...]",
	Short: "Record a reading session",
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
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			cobra.CheckErr(fmt.Errorf("minutes must be a positive number"))
		}
		note := strings.Join(args[2:], " ")

		session, err := deps.Controller.RecordSession(cmd.Context(), bookID, minutes, note)
		if err != nil {
			cobra.CheckErr(err)
		}
		fmt.Printf("✅ Logged %d min against book %d (session %d)\n", session.Duration, session.Book, session.ID)
	},
}
