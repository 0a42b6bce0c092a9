package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		if err := deps.Controller.Logout(); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Println("👋 Signed out")
	},
}
