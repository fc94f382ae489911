package analysis

import (
	"math"
	"sort"
	"time"
)

// SolveData represents minimal solve data for trend analysis.
type SolveData struct {
	SolveID       string
	CreatedAt     time.Time
	DurationMs    int64
	FaceTurns     int
	RotationMoves int
	Visited       int
	Levels        int
}

// TrendReport contains trend analysis across multiple solver runs.
type TrendReport struct {
	TotalSolves int       `json:"total_solves"`
	DateRange   DateRange `json:"date_range"`

	AvgDurationMs    float64 `json:"avg_duration_ms"`
	AvgFaceTurns     float64 `json:"avg_face_turns"`
	AvgRotationMoves float64 `json:"avg_rotation_moves"`
	AvgVisited       float64 `json:"avg_visited"`

	// Fastest/slowest
	Fastest SolveStats `json:"fastest"`
	Slowest SolveStats `json:"slowest"`

	// Face-turn histogram
	FaceTurnCounts map[int]int `json:"face_turn_counts"`

	// Visited states per millisecond, first quarter against last quarter.
	ThroughputChangePct float64 `json:"throughput_change_pct"`

	// Rolling duration averages (last 5, 10, 25, 50)
	RollingAvgs map[int]float64 `json:"rolling_averages"`

	Solves []SolveStats `json:"solves"`
}

// DateRange represents a date range.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SolveStats represents statistics for a single run in trend context.
type SolveStats struct {
	SolveID    string `json:"solve_id"`
	Timestamp  string `json:"timestamp"`
	DurationMs int64  `json:"duration_ms"`
	FaceTurns  int    `json:"face_turns"`
	Visited    int    `json:"visited"`
}

func statsOf(s *SolveData) SolveStats {
	return SolveStats{
		SolveID:    s.SolveID,
		Timestamp:  s.CreatedAt.Format(time.RFC3339),
		DurationMs: s.DurationMs,
		FaceTurns:  s.FaceTurns,
		Visited:    s.Visited,
	}
}

// AnalyzeTrends analyzes trends across multiple solver runs.
func AnalyzeTrends(solves []SolveData) *TrendReport {
	report := &TrendReport{
		TotalSolves:    len(solves),
		FaceTurnCounts: make(map[int]int),
		RollingAvgs:    make(map[int]float64),
		Solves:         make([]SolveStats, 0, len(solves)),
	}

	if len(solves) == 0 {
		return report
	}

	sorted := make([]SolveData, len(solves))
	copy(sorted, solves)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	report.DateRange = DateRange{
		Start: sorted[0].CreatedAt.Format(time.RFC3339),
		End:   sorted[len(sorted)-1].CreatedAt.Format(time.RFC3339),
	}

	var totalDuration, totalTurns, totalRotation, totalVisited int64
	var fastest, slowest *SolveData

	for i := range sorted {
		s := &sorted[i]
		totalDuration += s.DurationMs
		totalTurns += int64(s.FaceTurns)
		totalRotation += int64(s.RotationMoves)
		totalVisited += int64(s.Visited)
		report.FaceTurnCounts[s.FaceTurns]++
		report.Solves = append(report.Solves, statsOf(s))

		if fastest == nil || s.DurationMs < fastest.DurationMs {
			fastest = s
		}
		if slowest == nil || s.DurationMs > slowest.DurationMs {
			slowest = s
		}
	}

	n := float64(len(sorted))
	report.AvgDurationMs = float64(totalDuration) / n
	report.AvgFaceTurns = float64(totalTurns) / n
	report.AvgRotationMoves = float64(totalRotation) / n
	report.AvgVisited = float64(totalVisited) / n
	report.Fastest = statsOf(fastest)
	report.Slowest = statsOf(slowest)

	report.ThroughputChangePct = calculateThroughputChange(sorted)

	for _, k := range []int{5, 10, 25, 50} {
		if len(sorted) >= k {
			recent := sorted[len(sorted)-k:]
			var sum int64
			for _, s := range recent {
				sum += s.DurationMs
			}
			report.RollingAvgs[k] = float64(sum) / float64(k)
		}
	}

	return report
}

// throughput returns visited states per millisecond.
func throughput(solves []SolveData) float64 {
	var visited, ms int64
	for _, s := range solves {
		visited += int64(s.Visited)
		ms += s.DurationMs
	}
	if ms <= 0 {
		return 0
	}
	return float64(visited) / float64(ms)
}

// calculateThroughputChange compares the first and last quarter of runs.
func calculateThroughputChange(solves []SolveData) float64 {
	if len(solves) < 4 {
		return 0
	}
	quarterSize := len(solves) / 4

	first := throughput(solves[:quarterSize])
	last := throughput(solves[len(solves)-quarterSize:])
	if first <= 0 {
		return 0
	}
	change := ((last - first) / first) * 100
	if math.IsInf(change, 0) || math.IsNaN(change) {
		return 0
	}
	return change
}
