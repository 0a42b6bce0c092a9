package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/auth"
)

var resetCmd = &cobra.Command{
	Use:   "reset-password [email]",
	Short: "Request password reset instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		flow := auth.NewResetRequestFlow(deps.Client)
		if err := flow.Submit(cmd.Context(), args[0]); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Println("📧 If that address has an account, reset instructions are on their way.")
	},
}

var resetConfirmPassword string
var resetConfirmRepeat string

var resetConfirmCmd = &cobra.Command{
	Use:   "confirm [uid] [token]",
	Short: "Set a new password using the uid and token from the reset link",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		repeat := resetConfirmRepeat
		if repeat == "" {
			repeat = resetConfirmPassword
		}

		flow := auth.NewResetConfirmFlow(deps.Client)
		if err := flow.Submit(cmd.Context(), args[0], args[1], resetConfirmPassword, repeat); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Println("✅ " + auth.MsgPasswordChanged)
	},
}

func init() {
	resetConfirmCmd.Flags().StringVarP(&resetConfirmPassword, "password", "p", "", "New password")
	resetConfirmCmd.Flags().StringVar(&resetConfirmRepeat, "confirm", "", "Repeat the new password (defaults to --password)")
	_ = resetConfirmCmd.MarkFlagRequired("password")
	resetCmd.AddCommand(resetConfirmCmd)
}
