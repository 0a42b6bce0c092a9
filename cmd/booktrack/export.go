package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/integrations"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library as an EPUB reading journal",
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		ctx := cmd.Context()

		profile, err := deps.Controller.RestoreSession(ctx)
		if err != nil {
			cobra.CheckErr(err)
		}
		if profile == nil {
			cobra.CheckErr(fmt.Errorf("not logged in, run 'booktrack login' first"))
		}

		books, err := deps.Controller.RefreshLibrary(ctx)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to fetch library: %w", err))
		}
		notes, err := deps.Client.Notes(ctx)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to fetch notes: %w", err))
		}
		quotes, err := deps.Client.Quotes(ctx)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to fetch quotes: %w", err))
		}

		fmt.Printf("📖 Compiling journal for %d books...\n", len(books))

		builder := integrations.NewJournalBuilder(exportOutput)
		path, err := builder.CreateJournal(orEmptyProfile(profile), books, notes, quotes)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to build journal: %w", err))
		}
		fmt.Printf("✅ Journal written to %s\n", path)
	},
}

func orEmptyProfile(p *data.UserProfile) data.UserProfile {
	if p == nil {
		return data.UserProfile{}
	}
	return *p
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", ".", "Directory to write the journal into")
}
