package cli

import (
	"fmt"

	"github.com/mhess/twophase/internal/cube"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a uniformly random solvable cube",
	Long: `Print the 54-character facelet string of a uniformly random,
physically assemblable cube, suitable as a scramble for the solve
command.`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("count")
		for i := 0; i < n; i++ {
			fmt.Println(cube.RandomCube())
		}
	},
}

func init() {
	randomCmd.Flags().IntP("count", "n", 1, "Number of random cubes to generate")
}
