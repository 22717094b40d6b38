// Command gridpack solves tile-packing puzzles: it reads a board file and a
// piece file in the line-oriented text format, enumerates every complete
// packing, and reports the ones preserving the highest residual score.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridpack",
		Short: "Exhaustive tile-packing solver over scored grids",
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newVariantsCmd())
	root.AddCommand(newPlacementsCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gridpack 0.1.0-dev")
		},
	}
}
