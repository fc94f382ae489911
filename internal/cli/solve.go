package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	solveRandom   int
	solveSeed     int64
	solveSave     bool
	solveNotes    string
	solveWatch    bool
	solveTimeout  time.Duration
	solveMaxDepth int
	solveParallel bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [moves...]",
	Short: "Solve a scrambled cube",
	Long: `Scramble a solved cube with the given moves and find a shortest solution.

Moves use face letters R F U L B D, optionally followed by ' for a
counter-clockwise turn. With no moves a random scramble is used.

Examples:
  pocketcube solve R U F L
  pocketcube solve "R U R' U'"
  pocketcube solve --random 20 --seed 7
  pocketcube solve --watch --notes "warmup"`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveRandom, "random", "r", 0, "Use a random scramble of N moves (default: config scramble_length)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Seed for a reproducible random scramble")
	solveCmd.Flags().BoolVar(&solveSave, "save", true, "Save the solve to history")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes stored with the solve")
	solveCmd.Flags().BoolVarP(&solveWatch, "watch", "w", false, "Show live search progress")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this long (default: config timeout)")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 0, "Maximum search depth per side (default: config max_depth)")
	solveCmd.Flags().BoolVar(&solveParallel, "parallel", true, "Advance both frontiers concurrently")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := settings()

	scramble, err := resolveScramble(cmd, args, cfg.ScrambleLen)
	if err != nil {
		return err
	}

	s := recorder.Settings{
		MaxDepth: cfg.MaxDepth,
		Parallel: cfg.Parallel,
		Timeout:  cfg.Timeout,
		Notes:    solveNotes,
	}
	if cmd.Flags().Changed("max-depth") {
		s.MaxDepth = solveMaxDepth
	}
	if cmd.Flags().Changed("parallel") {
		s.Parallel = solveParallel
	}
	if cmd.Flags().Changed("timeout") {
		s.Timeout = solveTimeout
	}

	var db *storage.DB
	if solveSave {
		db, err = openDB()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	session := recorder.NewSession(db, logger)

	var rec *recorder.Record
	if solveWatch {
		rec, err = runWatch(cmd.Context(), session, scramble, s)
	} else {
		rec, err = session.Run(cmd.Context(), scramble, s)
	}
	if err != nil {
		return err
	}

	printRecord(rec)

	if rec.SolveID != "" {
		if err := cfgFile.SetLastSolve(rec.SolveID); err != nil {
			logger.Warn().Err(err).Msg("could not record last solve")
		}
	}

	return nil
}

// resolveScramble parses the scramble from args or generates a random one.
func resolveScramble(cmd *cobra.Command, args []string, defaultLen int) ([]pocketcube.Move, error) {
	if len(args) > 0 {
		if cmd.Flags().Changed("random") {
			return nil, fmt.Errorf("give either moves or --random, not both")
		}
		moves, err := pocketcube.ParseMoves(strings.Join(args, " "))
		if err != nil {
			return nil, fmt.Errorf("invalid scramble: %w", err)
		}
		return moves, nil
	}

	n := defaultLen
	if solveRandom > 0 {
		n = solveRandom
	}
	return randomScramble(n, cmd.Flags().Changed("seed"), solveSeed), nil
}

// randomScramble draws from a seeded source when a seed was given so the
// scramble can be reproduced.
func randomScramble(n int, seeded bool, seed int64) []pocketcube.Move {
	if seeded {
		return pocketcube.RandomMoves(n, rand.New(rand.NewSource(seed)))
	}
	moves, _ := pocketcube.RandomScramble(n)
	return moves
}

func printRecord(rec *recorder.Record) {
	r := rec.Result
	canonical := r.Canonical()

	fmt.Printf("%s %s\n", labelStyle.Render("Scramble: "), pocketcube.FormatMoves(rec.Scramble))
	fmt.Println(netStyle.Render(strings.TrimRight(rec.Cube.String(), "\n")))
	fmt.Println()

	fmt.Printf("%s %s\n", labelStyle.Render("Solution: "), renderSolution(r.Moves, r.ScrambledDepth))
	fmt.Printf("%s %s\n", labelStyle.Render("Canonical:"), moveStyle.Render(canonical.String()))
	fmt.Printf("%s %s\n", labelStyle.Render("Spoken:   "), notation.FormatPersonalSequence(canonical))
	fmt.Printf("%s %s\n", labelStyle.Render("Reverse:  "), pocketcube.FormatMoves(r.Reversed()))
	fmt.Println()

	fmt.Printf("Face turns:    %d (%d + %d)\n", r.FaceTurns(), r.ScrambledDepth, r.SolvedDepth)
	fmt.Printf("Rotation:      %s\n", formatRotation(r.Rotation))
	fmt.Printf("Compact turns: %d\n", canonical.Len())
	fmt.Printf("Levels:        %d\n", r.Levels)
	fmt.Printf("Visited:       %d scrambled, %d solved\n", r.VisitedScrambled, r.VisitedSolved)
	fmt.Printf("Intersections: %d\n", r.Intersections)
	fmt.Printf("Elapsed:       %s\n", formatDuration(r.Elapsed))

	if rec.SolveID != "" {
		fmt.Println()
		fmt.Println(statusStyle.Render("Saved as " + rec.SolveID))
	}
}

// renderSolution colors the scrambled-side and solved-side halves of a
// solution differently.
func renderSolution(moves []pocketcube.Move, scrambledDepth int) string {
	if len(moves) == 0 {
		return moveStyle.Render("(already solved)")
	}
	split := min(scrambledDepth, len(moves))
	parts := make([]string, 0, 2)
	if split > 0 {
		parts = append(parts, moveStyle.Render(pocketcube.FormatMoves(moves[:split])))
	}
	if split < len(moves) {
		parts = append(parts, solvedSideStyle.Render(pocketcube.FormatMoves(moves[split:])))
	}
	return strings.Join(parts, " ")
}

// formatRotation describes the whole-cube rotation folded into a solution.
func formatRotation(rotation []pocketcube.Move) string {
	if len(rotation) == 0 {
		return "none"
	}
	return pocketcube.FormatMoves(rotation)
}
