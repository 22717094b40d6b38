package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlacementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "placements <board-file> <pieces-file>",
		Short: "Print every legal placement of every orientation on the start board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoardFile(args[0])
			if err != nil {
				return err
			}
			pieces, err := readPiecesFile(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Possible placements:")
			for _, p := range pieces {
				for _, v := range p.AllVariants() {
					it := b.Placements(v)
					for placed, ok := it.Next(); ok; placed, ok = it.Next() {
						fmt.Fprintf(out, "%s\n\n", placed)
					}
				}
			}

			return nil
		},
	}
}
