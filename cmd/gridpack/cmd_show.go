package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpack/archive"
)

func newShowCmd() *cobra.Command {
	var bestOnly bool

	cmd := &cobra.Command{
		Use:   "show <archive-file>",
		Short: "Print an archived solve run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := archive.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s (%s)\n\n", arc.Manifest.RunID,
				arc.Manifest.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintf(out, "start:\n%s\n\n", arc.Start)

			if !bestOnly {
				fmt.Fprintln(out, "Solutions:")
				for _, s := range arc.Solutions {
					fmt.Fprintf(out, "%s\n\n", s)
				}
			}

			fmt.Fprintln(out, "Best solutions")
			for _, s := range arc.Best {
				fmt.Fprintf(out, "%s\n\n", s)
			}

			fmt.Fprintf(out, "Number of solutions %d\n", arc.Manifest.Count)
			fmt.Fprintf(out, "Highest score %d\n", arc.Manifest.HighestScore)

			return nil
		},
	}

	cmd.Flags().BoolVar(&bestOnly, "best-only", false, "print only the best solutions")

	return cmd
}
