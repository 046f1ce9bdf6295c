package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-containers/internal/build"
)

// NewVersionCommand returns the command to print the build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the containers version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "containers %s (commit %s, built %s)\n", build.Version, build.Commit, build.Date)
			return nil
		},
	}
}
