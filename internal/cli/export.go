package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
)

var (
	exportSolveID string
	exportFormat  string
	exportOutput  string
	exportLast    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored solve",
	Long: `Export the scramble and solution of a stored solve in text or JSON format.

Examples:
  pocketcube export --last
  pocketcube export --id <solve_id> --format json
  pocketcube export --id <solve_id> --format txt -o solve.txt`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportSolveID, "id", "", "Solve ID (or unique prefix) to export")
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last solve")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// exportMove is one solution move in JSON output.
type exportMove struct {
	MoveIndex int    `json:"move_index"`
	Notation  string `json:"notation"`
	Segment   string `json:"segment"`
}

type exportDoc struct {
	*analysis.SolutionSummary
	CreatedAt string       `json:"created_at"`
	Notes     string       `json:"notes,omitempty"`
	Levels    int          `json:"levels"`
	Visited   int          `json:"visited"`
	Moves     []exportMove `json:"moves"`
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportSolveID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solve, err := findSolve(db, exportSolveID, exportLast)
	if err != nil {
		return err
	}

	stored, err := recorder.Load(db, solve)
	if err != nil {
		return err
	}

	summary := analysis.Summarize(stored.Scramble, stored.Solution)
	summary.SolveID = solve.SolveID

	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		output = strings.Join([]string{
			"scramble:  " + summary.Scramble,
			"solution:  " + summary.Solution,
			"canonical: " + summary.Canonical,
		}, "\n")

	case "json":
		doc := exportDoc{
			SolutionSummary: summary,
			CreatedAt:       solve.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Levels:          solve.Levels,
			Visited:         solve.VisitedScrambled + solve.VisitedSolved,
		}
		if solve.Notes != nil {
			doc.Notes = *solve.Notes
		}
		for i, m := range stored.Solution {
			doc.Moves = append(doc.Moves, exportMove{
				MoveIndex: i,
				Notation:  m.Notation(),
				Segment:   stored.Segments[i],
			})
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Exported solve %s to %s\n", solve.SolveID, exportOutput)
	return nil
}
