package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants <pieces-file>",
		Short: "Print every distinct orientation of each piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pieces, err := readPiecesFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range pieces {
				fmt.Fprintf(out, "Piece %c\n", pieceLetter(p.ID))
				for _, v := range p.AllVariants() {
					fmt.Fprintf(out, "%s\n\n", v)
				}
			}

			return nil
		},
	}
}
