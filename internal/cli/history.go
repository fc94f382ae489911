package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse stored solves",
	Long:  `List, inspect, summarize and delete solves recorded in the database.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve_id]",
	Short: "Show details of a solve",
	Long: `Show a stored solve with its segments and analysis.

The solve ID may be abbreviated to any unique prefix. Without an ID the
most recent solve is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over all solves",
	RunE:  runHistoryStats,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve_id>",
	Short: "Delete a solve and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of solves to list")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solve")

	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

// findSolve resolves a solve by ID prefix, or the most recent one when
// last is set or no ID was given.
func findSolve(db *storage.DB, id string, last bool) (*storage.Solve, error) {
	repo := storage.NewSolveRepository(db)

	if last || id == "" {
		solve, err := repo.GetLast()
		if err != nil {
			return nil, fmt.Errorf("failed to get last solve: %w", err)
		}
		if solve == nil {
			return nil, fmt.Errorf("no solves found")
		}
		return solve, nil
	}

	solve, err := repo.FindByPrefix(id)
	if err != nil {
		return nil, err
	}
	if solve == nil {
		return nil, fmt.Errorf("solve not found: %s", id)
	}
	return solve, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet. Run: pocketcube solve")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %5s  %6s  %10s  %s\n", "ID", "Created", "Turns", "Rotate", "Duration", "Scramble")
	fmt.Println(strings.Repeat("-", 110))

	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %5d  %6d  %10s  %s\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.FaceTurns(),
			s.RotationLen,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond),
			truncate(s.ScrambleText, 30),
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var id string
	if len(args) > 0 {
		id = args[0]
	}
	solve, err := findSolve(db, id, historyLast)
	if err != nil {
		return err
	}

	stored, err := recorder.Load(db, solve)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Solve " + solve.SolveID))
	fmt.Printf("Created:  %s\n", solve.CreatedAt.Local().Format(time.RFC1123))
	if solve.Notes != nil {
		fmt.Printf("Notes:    %s\n", *solve.Notes)
	}
	fmt.Println()

	fmt.Printf("%s %s\n", labelStyle.Render("Scramble: "), pocketcube.FormatMoves(stored.Scramble))
	fmt.Println(netStyle.Render(strings.TrimRight(stored.Cube().String(), "\n")))
	fmt.Println()

	fmt.Printf("%s %s\n", labelStyle.Render("Solution: "),
		renderSolution(stored.Solution, solve.ScrambledDepth))
	fmt.Printf("%s %s\n", labelStyle.Render("Canonical:"), moveStyle.Render(solve.CanonicalText))
	fmt.Println()

	fmt.Println(labelStyle.Render("Search"))
	fmt.Printf("  Face turns:    %d (%d + %d)\n", solve.FaceTurns(), solve.ScrambledDepth, solve.SolvedDepth)
	fmt.Printf("  Levels:        %d\n", solve.Levels)
	fmt.Printf("  Visited:       %d scrambled, %d solved\n", solve.VisitedScrambled, solve.VisitedSolved)
	fmt.Printf("  Intersections: %d\n", solve.Intersections)
	fmt.Printf("  Duration:      %s\n", formatDuration(time.Duration(solve.DurationMs)*time.Millisecond))
	if solve.MaxDepth > 0 {
		fmt.Printf("  Max depth:     %d (parallel: %v)\n", solve.MaxDepth, solve.Parallel)
	}
	fmt.Println()

	summary := analysis.Summarize(stored.Scramble, stored.Solution)
	printSummary(summary)

	return nil
}

func printSummary(s *analysis.SolutionSummary) {
	fmt.Println(labelStyle.Render("Analysis"))
	fmt.Printf("  Quarter turns:  %d\n", s.QuarterTurns)
	fmt.Printf("  Compact tokens: %d\n", s.CompactTokens)
	fmt.Printf("  Efficiency:     %.0f%%\n", s.Efficiency*100)
	fmt.Printf("  Nice ratio:     %.0f%% (R, U, F)\n", s.NiceRatio*100)

	if s.Profile != nil && len(s.Profile.FaceCounts) > 0 {
		var faces []string
		for _, f := range pocketcube.Faces {
			if n := s.Profile.FaceCounts[f]; n > 0 {
				faces = append(faces, fmt.Sprintf("%s:%d", f, n))
			}
		}
		fmt.Printf("  Faces:          %s (most used %s, %d prime)\n",
			strings.Join(faces, " "), s.Profile.MostUsedFace, s.Profile.PrimeCount)
	}

	if r := s.Repetitions; r != nil && r.TotalWastedMoves > 0 {
		fmt.Printf("  Wasted moves:   %d\n", r.TotalWastedMoves)
		for _, c := range r.ImmediateCancellations {
			fmt.Printf("    cancel at %d: %s %s\n", c.Index1, c.Move1, c.Move2)
		}
		for _, mo := range r.MergeOpportunities {
			fmt.Printf("    merge at %d: %s %s -> %s\n", mo.Index1, mo.Move1, mo.Move2, mo.MergedMove)
		}
	}
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	stats, err := repo.Stats()
	if err != nil {
		return err
	}
	if stats.Count == 0 {
		fmt.Println("No solves recorded yet. Run: pocketcube solve")
		return nil
	}

	solves, err := repo.List(-1)
	if err != nil {
		return err
	}
	data := make([]analysis.SolveData, 0, len(solves))
	for _, s := range solves {
		data = append(data, analysis.SolveData{
			SolveID:       s.SolveID,
			CreatedAt:     s.CreatedAt,
			DurationMs:    s.DurationMs,
			FaceTurns:     s.FaceTurns(),
			RotationMoves: s.RotationLen,
			Visited:       s.VisitedScrambled + s.VisitedSolved,
			Levels:        s.Levels,
		})
	}
	report := analysis.AnalyzeTrends(data)

	fmt.Println(titleStyle.Render("Solve Statistics"))
	fmt.Printf("Solves:          %d (%s to %s)\n", stats.Count, report.DateRange.Start, report.DateRange.End)
	fmt.Printf("Face turns:      %.2f avg, %d max\n", stats.AvgFaceTurns, stats.MaxFaceTurns)
	fmt.Printf("Rotation moves:  %.2f avg\n", stats.AvgRotationMoves)
	fmt.Printf("Duration:        %s avg\n", formatDuration(time.Duration(stats.AvgDurationMs*float64(time.Millisecond))))
	fmt.Printf("States visited:  %d total, %.0f avg\n", stats.TotalVisited, report.AvgVisited)
	fmt.Printf("Fastest:         %s (%s)\n", formatDuration(time.Duration(report.Fastest.DurationMs)*time.Millisecond), report.Fastest.SolveID)
	fmt.Printf("Slowest:         %s (%s)\n", formatDuration(time.Duration(report.Slowest.DurationMs)*time.Millisecond), report.Slowest.SolveID)
	if report.ThroughputChangePct != 0 {
		fmt.Printf("Throughput:      %+.1f%% (first quarter vs last quarter)\n", report.ThroughputChangePct)
	}

	var windows []int
	for k := range report.RollingAvgs {
		windows = append(windows, k)
	}
	sort.Ints(windows)
	for _, k := range windows {
		fmt.Printf("Avg of last %-3d  %s\n", k, formatDuration(time.Duration(report.RollingAvgs[k]*float64(time.Millisecond))))
	}

	fmt.Println()
	fmt.Println(labelStyle.Render("Face turn distribution"))
	var turns []int
	for t := range report.FaceTurnCounts {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	for _, t := range turns {
		n := report.FaceTurnCounts[t]
		fmt.Printf("  %2d  %-30s %d\n", t, strings.Repeat("#", scaleBar(n, stats.Count, 30)), n)
	}

	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solve, err := findSolve(db, args[0], false)
	if err != nil {
		return err
	}
	if err := storage.NewSolveRepository(db).Delete(solve.SolveID); err != nil {
		return err
	}

	fmt.Printf("Deleted solve %s\n", solve.SolveID)
	return nil
}

func scaleBar(n, total, width int) int {
	if total == 0 {
		return 0
	}
	w := n * width / total
	if w == 0 && n > 0 {
		w = 1
	}
	return w
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
