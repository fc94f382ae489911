package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
)

var (
	scrambleLength int
	scrambleSeed   int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Generate a random scramble and show the cube it produces.

Examples:
  pocketcube scramble
  pocketcube scramble --length 25 --seed 42`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default: config scramble_length)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	n := settings().ScrambleLen
	if scrambleLength > 0 {
		n = scrambleLength
	}

	moves := randomScramble(n, cmd.Flags().Changed("seed"), scrambleSeed)
	cube := pocketcube.Scramble(moves...)

	fmt.Println(pocketcube.FormatMoves(moves))
	fmt.Println(netStyle.Render(strings.TrimRight(cube.String(), "\n")))
	return nil
}
