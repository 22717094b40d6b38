package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpack/archive"
	"github.com/katalvlaran/gridpack/solver"
)

func newSolveCmd() *cobra.Command {
	var (
		configPath  string
		workers     int
		bestOnly    bool
		archivePath string
	)

	cmd := &cobra.Command{
		Use:   "solve <board-file> <pieces-file>",
		Short: "Enumerate every complete packing and report the best ones",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			// Explicit flags win over the config file.
			if !cmd.Flags().Changed("workers") && cfg.Solver.Workers > 0 {
				workers = cfg.Solver.Workers
			}
			if !cmd.Flags().Changed("best-only") {
				bestOnly = cfg.Solver.BestOnly
			}

			b, err := readBoardFile(args[0])
			if err != nil {
				return err
			}
			pieces, err := readPiecesFile(args[1])
			if err != nil {
				return err
			}

			opts := solver.DefaultOptions()
			opts.Workers = workers
			opts.BestOnly = bestOnly
			res, err := solver.Solve(b, pieces, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start:\n%s\n\n", res.Start)

			if !bestOnly {
				fmt.Fprintln(out, "Solutions:")
				for _, s := range res.Solutions {
					fmt.Fprintf(out, "%s\n\n", s)
				}
			}

			fmt.Fprintln(out, "Best solutions")
			for _, s := range res.Best() {
				fmt.Fprintf(out, "%s\n\n", s)
			}

			fmt.Fprintf(out, "Number of solutions %d\n", res.Count)
			fmt.Fprintf(out, "Highest score %d\n", res.HighestScore())

			if archivePath != "" {
				manifest, err := archive.Save(archivePath, res)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Archived run %s to %s\n", manifest.RunID, archivePath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file (default "+defaultConfigPath()+")")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines for top-level search branches")
	cmd.Flags().BoolVar(&bestOnly, "best-only", false, "keep only the highest-scoring packings")
	cmd.Flags().StringVar(&archivePath, "archive", "", "write the run to this archive file")

	return cmd
}
