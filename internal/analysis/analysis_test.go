package analysis

import (
	"testing"
	"time"

	"github.com/SeamusWaldron/pocketcube"
)

func TestAnalyzeRepetitions(t *testing.T) {
	moves := []pocketcube.Move{pocketcube.R, pocketcube.RPrime, pocketcube.U, pocketcube.U, pocketcube.F}
	report := AnalyzeRepetitions(moves)

	if len(report.ImmediateCancellations) != 1 {
		t.Fatalf("expected 1 cancellation, got %d", len(report.ImmediateCancellations))
	}
	if report.ImmediateCancellations[0].Move2 != "R'" {
		t.Errorf("cancellation = %+v", report.ImmediateCancellations[0])
	}
	if len(report.MergeOpportunities) != 1 || report.MergeOpportunities[0].MergedMove != "U2" {
		t.Errorf("merge opportunities = %+v", report.MergeOpportunities)
	}
	if report.TotalWastedMoves != 3 {
		t.Errorf("wasted moves = %d, want 3", report.TotalWastedMoves)
	}
}

func TestBackAndForth(t *testing.T) {
	var moves []pocketcube.Move
	for i := 0; i < 3; i++ {
		moves = append(moves, pocketcube.R, pocketcube.U)
	}
	report := AnalyzeRepetitions(moves)
	if len(report.BackAndForthPatterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(report.BackAndForthPatterns))
	}
	p := report.BackAndForthPatterns[0]
	if p.Count != 3 || p.StartIndex != 0 || p.EndIndex != 5 {
		t.Errorf("pattern = %+v", p)
	}
}

func TestCalculateEfficiency(t *testing.T) {
	if got := CalculateEfficiency(nil); got != 1.0 {
		t.Errorf("empty efficiency = %v, want 1", got)
	}
	got := CalculateEfficiency([]pocketcube.Move{pocketcube.U, pocketcube.U, pocketcube.R, pocketcube.F})
	if got != 0.75 {
		t.Errorf("efficiency = %v, want 0.75", got)
	}
}

func TestSummarize(t *testing.T) {
	scramble := []pocketcube.Move{pocketcube.R, pocketcube.U}
	solution := []pocketcube.Move{pocketcube.UPrime, pocketcube.L, pocketcube.RPrime, pocketcube.LPrime}
	s := Summarize(scramble, solution)

	if s.QuarterTurns != 4 {
		t.Errorf("quarter turns = %d, want 4", s.QuarterTurns)
	}
	if s.NiceRatio != 0.5 {
		t.Errorf("nice ratio = %v, want 0.5", s.NiceRatio)
	}
	if s.Profile.MostUsedFace != pocketcube.FaceL {
		t.Errorf("most used face = %s, want L", s.Profile.MostUsedFace)
	}
	if s.Profile.PrimeCount != 3 {
		t.Errorf("prime count = %d, want 3", s.Profile.PrimeCount)
	}
}

func TestAnalyzeTrends(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var solves []SolveData
	for i := 0; i < 8; i++ {
		solves = append(solves, SolveData{
			SolveID:    string(rune('a' + i)),
			CreatedAt:  base.Add(time.Duration(7-i) * time.Hour),
			DurationMs: int64(10 + i),
			FaceTurns:  4 + i%2,
			Visited:    100,
		})
	}

	report := AnalyzeTrends(solves)
	if report.TotalSolves != 8 {
		t.Errorf("total = %d, want 8", report.TotalSolves)
	}
	if report.Fastest.SolveID != "a" || report.Slowest.SolveID != "h" {
		t.Errorf("fastest/slowest = %s/%s", report.Fastest.SolveID, report.Slowest.SolveID)
	}
	if report.FaceTurnCounts[4] != 4 || report.FaceTurnCounts[5] != 4 {
		t.Errorf("histogram = %v", report.FaceTurnCounts)
	}
	if report.Solves[0].SolveID != "h" {
		t.Errorf("solves should be sorted oldest first, got %s", report.Solves[0].SolveID)
	}
	if _, ok := report.RollingAvgs[5]; !ok {
		t.Error("expected a rolling average over 5")
	}
	// Oldest runs are the slowest, so throughput rises.
	if report.ThroughputChangePct <= 0 {
		t.Errorf("throughput change = %v, want positive", report.ThroughputChangePct)
	}
	if solves[0].SolveID != "a" {
		t.Error("AnalyzeTrends should not reorder its input")
	}
}

func TestAnalyzeTrendsEmpty(t *testing.T) {
	report := AnalyzeTrends(nil)
	if report.TotalSolves != 0 || len(report.Solves) != 0 {
		t.Errorf("unexpected report for no solves: %+v", report)
	}
}
