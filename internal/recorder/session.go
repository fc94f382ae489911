// Package recorder runs solver sessions and records them in the database.
package recorder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

// SessionState represents the current state of a session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateSolving
	StateDone
	StateFailed
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSolving:
		return "solving"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Record is a finished solve: the scramble, the cube it produced and the
// verified result.
type Record struct {
	SolveID  string
	Scramble []pocketcube.Move
	Cube     pocketcube.Cube
	Result   *pocketcube.Result
}

// Session runs one solve at a time and stores finished runs.
type Session struct {
	db     *storage.DB
	logger zerolog.Logger

	mu       sync.RWMutex
	state    SessionState
	progress pocketcube.Progress
	last     *Record

	// Repositories
	solveRepo *storage.SolveRepository

	// Callbacks
	onProgress func(pocketcube.Progress)
}

// NewSession creates a session. A nil db disables persistence.
func NewSession(db *storage.DB, logger zerolog.Logger) *Session {
	s := &Session{
		db:     db,
		logger: logger,
		state:  StateIdle,
	}
	if db != nil {
		s.solveRepo = storage.NewSolveRepository(db)
	}
	return s
}

// SetProgressCallback sets the callback for per-level search progress.
func (s *Session) SetProgressCallback(cb func(pocketcube.Progress)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onProgress = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Progress returns the latest search progress.
func (s *Session) Progress() pocketcube.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

// Last returns the most recent finished record, or nil.
func (s *Session) Last() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Settings are the solver settings used for a run.
type Settings struct {
	MaxDepth int
	Parallel bool
	Timeout  time.Duration
	Notes    string
}

// Run scrambles a solved cube, solves it and stores the run when the
// session has a database.
func (s *Session) Run(ctx context.Context, scramble []pocketcube.Move, settings Settings) (*Record, error) {
	s.mu.Lock()
	if s.state == StateSolving {
		s.mu.Unlock()
		return nil, fmt.Errorf("solve already in progress")
	}
	s.state = StateSolving
	s.progress = pocketcube.Progress{}
	onProgress := s.onProgress
	s.mu.Unlock()

	rec, err := s.run(ctx, scramble, settings, onProgress)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		return nil, err
	}
	s.state = StateDone
	s.last = rec
	return rec, nil
}

func (s *Session) run(ctx context.Context, scramble []pocketcube.Move, settings Settings, onProgress func(pocketcube.Progress)) (*Record, error) {
	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	solver := pocketcube.NewSolver(
		pocketcube.WithLogger(s.logger),
		pocketcube.WithMaxDepth(settings.MaxDepth),
		pocketcube.WithParallel(settings.Parallel),
		pocketcube.WithProgress(func(p pocketcube.Progress) {
			s.mu.Lock()
			s.progress = p
			s.mu.Unlock()
			if onProgress != nil {
				onProgress(p)
			}
		}),
	)

	cube := pocketcube.Scramble(scramble...)
	result, err := solver.Solve(ctx, cube)
	if err != nil {
		return nil, fmt.Errorf("failed to solve %q: %w", pocketcube.FormatMoves(scramble), err)
	}

	rec := &Record{Scramble: scramble, Cube: cube, Result: result}
	if s.solveRepo == nil {
		return rec, nil
	}

	row := NewSolveRow(rec, settings)
	id, err := s.solveRepo.CreateWithMoves(row, MoveRows(rec))
	if err != nil {
		return nil, fmt.Errorf("failed to save solve: %w", err)
	}
	rec.SolveID = id

	s.logger.Debug().Str("solve_id", id).Msg("solve saved")
	return rec, nil
}

// NewSolveRow converts a record into its database row.
func NewSolveRow(rec *Record, settings Settings) *storage.Solve {
	r := rec.Result
	row := &storage.Solve{
		ScrambleText:     pocketcube.FormatMoves(rec.Scramble),
		SolutionText:     pocketcube.FormatMoves(r.Moves),
		CanonicalText:    r.Canonical().String(),
		ScrambledDepth:   r.ScrambledDepth,
		SolvedDepth:      r.SolvedDepth,
		RotationLen:      len(r.Rotation),
		Levels:           r.Levels,
		VisitedScrambled: r.VisitedScrambled,
		VisitedSolved:    r.VisitedSolved,
		Intersections:    r.Intersections,
		DurationMs:       r.Elapsed.Milliseconds(),
		MaxDepth:         settings.MaxDepth,
		Parallel:         settings.Parallel,
	}
	if settings.Notes != "" {
		notes := settings.Notes
		row.Notes = &notes
	}
	return row
}

// MoveRows lists the scramble and solution moves with their segments.
func MoveRows(rec *Record) []storage.MoveRecord {
	r := rec.Result
	rows := make([]storage.MoveRecord, 0, len(rec.Scramble)+len(r.Moves))
	for i, m := range rec.Scramble {
		rows = append(rows, storage.MoveRecord{
			Sequence:  storage.SequenceScramble,
			Segment:   storage.SegmentScramble,
			MoveIndex: i,
			Notation:  m.Notation(),
		})
	}
	for i, m := range r.Moves {
		segment := storage.SegmentSolved
		if i < r.ScrambledDepth {
			segment = storage.SegmentScrambled
		}
		rows = append(rows, storage.MoveRecord{
			Sequence:  storage.SequenceSolution,
			Segment:   segment,
			MoveIndex: i,
			Notation:  m.Notation(),
		})
	}
	return rows
}
