package cli

import (
	"fmt"
	"os"

	"github.com/mhess/twophase/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [facelets]",
	Short: "Verify a facelet string describes a solvable cube",
	Long: `Check whether a 54-character facelet string (U R F D L B face order,
row-major from each face's top-left sticker) describes a cube that a
physical Rubik's cube could actually be in.

Exits 0 and prints "solvable" if so; otherwise exits 1 and prints the
violated invariant.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")

		code := cube.Verify(args[0])
		if !headless {
			fmt.Println(code)
		}
		if code != cube.OK {
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for solvable, 1 otherwise (no output)")
}
