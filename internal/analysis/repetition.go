// Package analysis provides solution analysis algorithms.
package analysis

import (
	"github.com/SeamusWaldron/pocketcube"
)

// Cancellation represents an immediate move cancellation (e.g., R followed by R').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
}

// MergeOpportunity represents adjacent same-face moves that could be merged.
type MergeOpportunity struct {
	Index1     int    `json:"index1"`
	Index2     int    `json:"index2"`
	Move1      string `json:"move1"`
	Move2      string `json:"move2"`
	MergedMove string `json:"merged_move"`
}

// BackAndForthPattern represents alternating moves (e.g., R U R U R U).
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations"`
	MergeOpportunities     []MergeOpportunity    `json:"merge_opportunities"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns"`
	TotalWastedMoves       int                   `json:"total_wasted_moves"`
}

// AnalyzeRepetitions analyzes a move sequence for repetitions and wasted motion.
func AnalyzeRepetitions(moves []pocketcube.Move) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		MergeOpportunities:     []MergeOpportunity{},
		BackAndForthPatterns:   []BackAndForthPattern{},
	}

	if len(moves) < 2 {
		return report
	}

	for i := 0; i < len(moves)-1; i++ {
		m1, m2 := moves[i], moves[i+1]
		if m1.Face() != m2.Face() {
			continue
		}

		if m2 == m1.Opposite() {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
			})
			report.TotalWastedMoves += 2
			continue
		}

		// R R is one half turn in compact notation.
		merged := pocketcube.Canonicalize([]pocketcube.Move{m1, m2})
		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1:     i,
			Index2:     i + 1,
			Move1:      m1.Notation(),
			Move2:      m2.Notation(),
			MergedMove: merged.String(),
		})
		report.TotalWastedMoves++
	}

	report.BackAndForthPatterns = findBackAndForth(moves)

	return report
}

// findBackAndForth finds alternating move patterns like R U R U R U.
func findBackAndForth(moves []pocketcube.Move) []BackAndForthPattern {
	var patterns []BackAndForthPattern

	if len(moves) < 4 {
		return patterns
	}

	i := 0
	for i < len(moves)-3 {
		a, b := moves[i], moves[i+1]

		count := 1
		j := i + 2
		for j < len(moves)-1 && moves[j] == a && moves[j+1] == b {
			count++
			j += 2
		}

		// Require at least 3 repetitions to be noteworthy
		if count >= 3 {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

// CalculateEfficiency returns the compact token count over the raw move
// count.
func CalculateEfficiency(moves []pocketcube.Move) float64 {
	if len(moves) == 0 {
		return 1.0
	}
	return float64(pocketcube.Canonicalize(moves).Len()) / float64(len(moves))
}
