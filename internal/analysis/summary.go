package analysis

import (
	"github.com/SeamusWaldron/pocketcube"
)

// SolutionSummary contains statistics for a single solution.
type SolutionSummary struct {
	SolveID       string            `json:"solve_id,omitempty"`
	Scramble      string            `json:"scramble"`
	Solution      string            `json:"solution"`
	Canonical     string            `json:"canonical"`
	QuarterTurns  int               `json:"quarter_turns"`
	CompactTokens int               `json:"compact_tokens"`
	Efficiency    float64           `json:"efficiency"`
	NiceRatio     float64           `json:"nice_ratio"`
	Profile       *MovementProfile  `json:"profile"`
	Repetitions   *RepetitionReport `json:"repetitions"`
}

// Summarize builds a summary from a scramble and its solution.
func Summarize(scramble, solution []pocketcube.Move) *SolutionSummary {
	canonical := pocketcube.Canonicalize(solution)
	return &SolutionSummary{
		Scramble:      pocketcube.FormatMoves(scramble),
		Solution:      pocketcube.FormatMoves(solution),
		Canonical:     canonical.String(),
		QuarterTurns:  len(solution),
		CompactTokens: canonical.Len(),
		Efficiency:    CalculateEfficiency(solution),
		NiceRatio:     NiceRatio(solution),
		Profile:       AnalyzeMovementProfile(solution),
		Repetitions:   AnalyzeRepetitions(solution),
	}
}

// NiceRatio is the share of R, U and F turns, which are the easiest to
// execute by hand.
func NiceRatio(moves []pocketcube.Move) float64 {
	if len(moves) == 0 {
		return 0
	}
	n := 0
	for _, m := range moves {
		switch m.Face() {
		case pocketcube.FaceR, pocketcube.FaceU, pocketcube.FaceF:
			n++
		}
	}
	return float64(n) / float64(len(moves))
}

// MovementProfile analyzes the movement patterns in a solution.
type MovementProfile struct {
	FaceCounts    map[pocketcube.Face]int `json:"face_counts"`
	PrimeCount    int                     `json:"prime_count"`
	MostUsedFace  pocketcube.Face         `json:"most_used_face"`
	FaceSequences map[string]int          `json:"face_sequences"` // e.g., "RU" -> count
}

// AnalyzeMovementProfile analyzes which faces and directions are most used.
func AnalyzeMovementProfile(moves []pocketcube.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:    make(map[pocketcube.Face]int),
		FaceSequences: make(map[string]int),
	}

	for i, m := range moves {
		profile.FaceCounts[m.Face()]++
		if m.IsPrime() {
			profile.PrimeCount++
		}

		if i > 0 {
			seq := string(moves[i-1].Face()) + string(m.Face())
			profile.FaceSequences[seq]++
		}
	}

	// Walk faces in fixed order so ties are stable.
	maxFaceCount := 0
	for _, face := range pocketcube.Faces {
		if count := profile.FaceCounts[face]; count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = face
		}
	}

	return profile
}
