package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication for StudyCast.

Use 'auth login' to sign in via browser and save your session.`,
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in to StudyCast in a browser and save the session",
		Long: `Opens a browser window at the StudyCast sign-in page.

Sign in with email or a social account as usual. Once the web app has
a session, the window closes and the access token and user id are saved
to the configuration file.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			prepareConfig(cmd)
			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authCmd.AddCommand(authLoginCmd)
	rootCmd.AddCommand(authCmd)
}
