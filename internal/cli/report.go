package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	reportSolveID   string
	reportLast      bool
	reportOutputDir string
	trendWindow     int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate analysis reports",
	Long:  `Generate analysis reports for solves and trends.`,
}

var reportSolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate a solve report",
	Long: `Generate a detailed analysis report for a specific solve.

Reports include:
  - solve_summary.json: Overview statistics and movement profile
  - moves.txt: Scramble, solution and compact notation
  - repetition_report.json: Cancellations, merges, patterns
  - segments/: Solution moves split into scrambled side and solved side`,
	RunE: runReportSolve,
}

var reportTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Generate a trend report",
	Long:  `Generate a trend report across recent solves with search throughput metrics.`,
	RunE:  runReportTrend,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.AddCommand(reportSolveCmd)
	reportSolveCmd.Flags().StringVar(&reportSolveID, "id", "", "Solve ID (or unique prefix) to report")
	reportSolveCmd.Flags().BoolVar(&reportLast, "last", false, "Report on the last solve")
	reportSolveCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory (default: ./reports/<date>)")

	reportCmd.AddCommand(reportTrendCmd)
	reportTrendCmd.Flags().IntVar(&trendWindow, "window", 50, "Number of recent solves to analyze")
	reportTrendCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory (default: ./reports)")
}

// FullSolveSummary is the JSON structure for solve_summary.json
type FullSolveSummary struct {
	*analysis.SolutionSummary
	CreatedAt        string `json:"created_at"`
	DurationMs       int64  `json:"duration_ms"`
	Levels           int    `json:"levels"`
	ScrambledDepth   int    `json:"scrambled_depth"`
	SolvedDepth      int    `json:"solved_depth"`
	RotationMoves    int    `json:"rotation_moves"`
	VisitedScrambled int    `json:"visited_scrambled"`
	VisitedSolved    int    `json:"visited_solved"`
	Intersections    int    `json:"intersections"`
	MaxDepth         int    `json:"max_depth,omitempty"`
	Parallel         bool   `json:"parallel"`
	Spoken           string `json:"spoken"`
	Notes            string `json:"notes,omitempty"`
}

func runReportSolve(cmd *cobra.Command, args []string) error {
	if reportSolveID == "" && !reportLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solve, err := findSolve(db, reportSolveID, reportLast)
	if err != nil {
		return err
	}

	outputDir, err := GenerateReportForSolve(db, solve, reportOutputDir)
	if err != nil {
		return err
	}

	fmt.Printf("Report generated: %s\n", outputDir)
	return nil
}

// GenerateReportForSolve writes the report files for a solve and returns
// the directory they were written to.
func GenerateReportForSolve(db *storage.DB, solve *storage.Solve, outputDir string) (string, error) {
	stored, err := recorder.Load(db, solve)
	if err != nil {
		return "", err
	}

	if outputDir == "" {
		outputDir = filepath.Join("reports", solve.CreatedAt.Local().Format("2006-01-02_150405"))
	}
	if err := os.MkdirAll(filepath.Join(outputDir, "segments"), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	summary := analysis.Summarize(stored.Scramble, stored.Solution)
	summary.SolveID = solve.SolveID
	canonical := pocketcube.Canonicalize(stored.Solution)

	full := FullSolveSummary{
		SolutionSummary:  summary,
		CreatedAt:        solve.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		DurationMs:       solve.DurationMs,
		Levels:           solve.Levels,
		ScrambledDepth:   solve.ScrambledDepth,
		SolvedDepth:      solve.SolvedDepth,
		RotationMoves:    solve.RotationLen,
		VisitedScrambled: solve.VisitedScrambled,
		VisitedSolved:    solve.VisitedSolved,
		Intersections:    solve.Intersections,
		MaxDepth:         solve.MaxDepth,
		Parallel:         solve.Parallel,
		Spoken:           notation.FormatPersonalSequence(canonical),
	}
	if solve.Notes != nil {
		full.Notes = *solve.Notes
	}

	if err := writeJSON(filepath.Join(outputDir, "solve_summary.json"), full); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(outputDir, "repetition_report.json"), summary.Repetitions); err != nil {
		return "", err
	}

	movesTxt := strings.Join([]string{
		"scramble:  " + summary.Scramble,
		"solution:  " + summary.Solution,
		"canonical: " + summary.Canonical,
		"reversed:  " + pocketcube.FormatMoves(pocketcube.Invert(stored.Solution)),
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(outputDir, "moves.txt"), []byte(movesTxt), 0644); err != nil {
		return "", fmt.Errorf("failed to write moves.txt: %w", err)
	}

	segments := make(map[string][]string)
	for i, m := range stored.Solution {
		segments[stored.Segments[i]] = append(segments[stored.Segments[i]], m.Notation())
	}
	for i, seg := range []string{storage.SegmentScrambled, storage.SegmentSolved} {
		name := fmt.Sprintf("%d_%s.txt", i+1, seg)
		data := strings.Join(segments[seg], " ") + "\n"
		if err := os.WriteFile(filepath.Join(outputDir, "segments", name), []byte(data), 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return outputDir, nil
}

func runReportTrend(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(trendWindow)
	if err != nil {
		return fmt.Errorf("failed to get solves: %w", err)
	}

	if len(solves) == 0 {
		return fmt.Errorf("no solves found")
	}

	fmt.Printf("Analyzing %d solves...\n", len(solves))

	solveData := make([]analysis.SolveData, 0, len(solves))
	for _, s := range solves {
		solveData = append(solveData, analysis.SolveData{
			SolveID:       s.SolveID,
			CreatedAt:     s.CreatedAt,
			DurationMs:    s.DurationMs,
			FaceTurns:     s.FaceTurns(),
			RotationMoves: s.RotationLen,
			Visited:       s.VisitedScrambled + s.VisitedSolved,
			Levels:        s.Levels,
		})
	}

	trendReport := analysis.AnalyzeTrends(solveData)

	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = "reports"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputFile := filepath.Join(outputDir, "trend_report.json")
	if err := writeJSON(outputFile, trendReport); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Trend report generated: %s\n", outputFile)
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  Average duration:   %.1fms\n", trendReport.AvgDurationMs)
	fmt.Printf("  Average face turns: %.2f\n", trendReport.AvgFaceTurns)
	fmt.Printf("  Average visited:    %.0f\n", trendReport.AvgVisited)
	fmt.Println()
	fmt.Printf("  Fastest solve: %dms (%s)\n", trendReport.Fastest.DurationMs, shortID(trendReport.Fastest.SolveID))
	fmt.Printf("  Slowest solve: %dms (%s)\n", trendReport.Slowest.DurationMs, shortID(trendReport.Slowest.SolveID))
	fmt.Printf("  Throughput change: %+.1f%%\n", trendReport.ThroughputChangePct)

	if len(trendReport.RollingAvgs) > 0 {
		fmt.Println()
		fmt.Println("Rolling averages:")
		for _, n := range []int{5, 10, 25, 50} {
			if avg, ok := trendReport.RollingAvgs[n]; ok {
				fmt.Printf("  ao%d: %.1fms\n", n, avg)
			}
		}
	}

	return nil
}

// writeJSON writes data as formatted JSON to a file.
func writeJSON(path string, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
