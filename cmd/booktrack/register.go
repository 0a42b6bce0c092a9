package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasyliev/booktrack/pkg/auth"
)

var (
	registerName     string
	registerPassword string
	registerConfirm  string
)

var registerCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer deps.Close()

		confirm := registerConfirm
		if confirm == "" {
			confirm = registerPassword
		}
		login := auth.NewLoginFlow(deps.Client, deps.Session)
		flow := auth.NewRegisterFlow(deps.Client, login)
		profile, _, err := flow.Submit(cmd.Context(), auth.RegisterForm{
			Name:            registerName,
			Email:           args[0],
			Password:        registerPassword,
			ConfirmPassword: confirm,
		})
		if err != nil {
			cobra.CheckErr(err)
		}

		fmt.Printf("✅ Account created, signed in as %s\n", profile.DisplayName())
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm", "", "Password confirmation (defaults to --password)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("password")
}
