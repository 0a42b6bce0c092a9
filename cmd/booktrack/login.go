package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/auth"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and store the session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		flow := auth.NewLoginFlow(deps.Client, deps.Session)
		profile, _, err := flow.Submit(cmd.Context(), args[0], loginPassword)
		if err != nil {
			cobra.CheckErr(err)
		}

		fmt.Printf("✅ Signed in as %s\n", profile.DisplayName())
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("password")
}
