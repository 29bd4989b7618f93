package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mhess/twophase/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube given as a 54-character facelet string (U R F D L B face
order, row-major from each face's top-left sticker), using Kociemba's
two-phase algorithm.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		facelets := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		maxLength, _ := cmd.Flags().GetInt("max-length")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		if code := cube.Verify(facelets); code != cube.OK {
			if !headless {
				fmt.Printf("Error: invalid cube (%s)\n", code)
			}
			os.Exit(1)
		}

		tables, err := loadTables(!headless)
		if err != nil {
			if !headless {
				fmt.Printf("Error loading tables: %v\n", err)
			}
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		moves, err := cube.Solve(ctx, tables, facelets, maxLength)
		elapsed := time.Since(start)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}

		optimized := cube.OptimizeMoves(moves)
		solutionStr := cube.FormatMoves(optimized)

		if headless {
			fmt.Print(solutionStr)
		} else {
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Moves: %d\n", len(optimized))
			fmt.Printf("Time: %v\n", elapsed)
		}
	},
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated move list")
	solveCmd.Flags().Int("max-length", 25, "Maximum solution length to search for")
	solveCmd.Flags().Duration("timeout", 10*time.Second, "Maximum time to spend searching")
}
