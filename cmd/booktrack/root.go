package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/app"
	"github.com/avasyliev/booktrack/pkg/config"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/logger"
	"github.com/avasyliev/booktrack/pkg/services"
	"github.com/avasyliev/booktrack/pkg/session"
)

var rootCmd = &cobra.Command{
	Use:   "booktrack",
	Short: "A personal reading tracker in your terminal",
	Long:  "Track your books, notes, quotes and reading time against a reading-tracker backend, with a TUI and a CLI",
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		// The TUI owns the terminal.
		logger.Silence()
		a := app.NewApp(deps.Controller, deps.Client, deps.Session)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// deps bundles the wired dependency graph for one command invocation.
type deps struct {
	Controller *services.Controller
	Client     *api.Client
	Session    session.Store
	repo       *data.Repository
}

func (d *deps) Close() {
	if d.repo != nil {
		d.repo.Close()
	}
}

func buildDeps() (*deps, error) {
	cfg := config.GetConfig()
	if cfg.IsDebug {
		logger.EnableDebug()
	}

	repo, err := data.Open(cfg.Storage.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	sess := session.NewSlotStore(repo)
	client := api.New(cfg.API.BaseURL, cfg.API.AuthURL, sess)
	controller := services.NewController(client, sess, repo)

	return &deps{Controller: controller, Client: client, Session: sess, repo: repo}, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
