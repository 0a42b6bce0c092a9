package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		stats, err := deps.Client.Stats(cmd.Context())
		if err != nil {
			cobra.CheckErr(err)
		}

		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B9BD5"))

		fmt.Println(title.Render("📚 Library"))
		fmt.Printf("  Books: %d total, %d read\n", stats.TotalBooks, stats.ReadCount)
		if stats.AverageRating > 0 {
			fmt.Printf("  Average rating: %.1f/5\n", stats.AverageRating)
		}
		fmt.Printf("  Genres: %d\n", stats.GenresCount)
		fmt.Printf("  Pages read: %d (%.0f per book)\n", stats.TotalPagesRead, stats.AveragePagesPer)

		if stats.YearlyGoal > 0 {
			fmt.Println(title.Render("\n🎯 Yearly goal"))
			fmt.Printf("  %d of %d books (%d%%)\n", stats.BooksReadThisYear, stats.YearlyGoal, stats.ProgressToGoal)
		}

		if stats.TotalReadingSessions > 0 {
			fmt.Println(title.Render("\n⏱  Reading time"))
			fmt.Printf("  %s across %d sessions\n", formatMinutes(stats.TotalReadingTime), stats.TotalReadingSessions)
			fmt.Printf("  Average session: %.0f min, per book: %.0f min\n",
				stats.AverageSessionDuration, stats.AverageTimePerBook)
		}

		if len(stats.GenreStats) > 0 {
			fmt.Println(title.Render("\n🏷  Top genres"))
			for _, g := range stats.GenreStats {
				fmt.Printf("  %-20s %d\n", g.Genre, g.Count)
			}
		}
		if len(stats.AuthorStats) > 0 {
			fmt.Println(title.Render("\n✍️  Top authors"))
			for _, a := range stats.AuthorStats {
				fmt.Printf("  %-20s %d\n", truncateString(a.Author, 20), a.Count)
			}
		}
		if len(stats.LastActivity) > 0 {
			fmt.Println(title.Render("\n🕘 Recent activity"))
			for _, item := range stats.LastActivity {
				fmt.Printf("  %s by %s (%s)\n", item.Title, item.Author, item.Status)
			}
		}
	},
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	parts := []string{fmt.Sprintf("%dh", minutes/60)}
	if rest := minutes % 60; rest > 0 {
		parts = append(parts, fmt.Sprintf("%dmin", rest))
	}
	return strings.Join(parts, " ")
}
