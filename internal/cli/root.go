// Package cli implements bookingctl, the operator CLI for booking decisions.
package cli

import (
	"github.com/spf13/cobra"
)

const version = "bookingctl v0.1"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookingctl",
		Short:         "Inspect class booking decisions",
		Long:          `Evaluate booking decisions offline from JSON snapshots or against a live studio API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDecideCmd(), newClassesCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bookingctl",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}
