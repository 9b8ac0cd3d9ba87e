package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/studycast/internal/version"
)

//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
