// Package cmd — algorithms command.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/sitehash/core/digest"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the hash algorithms supported on this platform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Algorithms supported for this platform:")
		for _, name := range digest.Available() {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
