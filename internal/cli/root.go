package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A two-phase Rubik's cube solver",
	Long: `Cube solves 3x3x3 Rubik's cubes using Kociemba's two-phase
algorithm, and can generate random scrambles and verify that a
facelet string describes a physically assemblable cube.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(serveCmd)
}
