package pocketcube

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Progress is reported after each synchronized level of the search.
type Progress struct {
	Level             int
	VisitedScrambled  int
	VisitedSolved     int
	FrontierScrambled int
	FrontierSolved    int
	Elapsed           time.Duration
}

// Result is a verified solution.
type Result struct {
	// Moves solves the scrambled cube: ScrambledPath, then the inverse of
	// SolvedPath relabelled through Rotation. The cube may finish solved in
	// a different whole-cube orientation.
	Moves []Move

	// ScrambledPath leads from the scrambled cube to the meeting state.
	ScrambledPath []Move
	// Rotation re-orients the meeting state reached from the scrambled side
	// onto the one reached from the solved side. It is folded into Moves
	// rather than played, and is empty when the two states match exactly.
	Rotation []Move
	// SolvedPath leads from the solved cube to the meeting state.
	SolvedPath []Move

	ScrambledDepth   int
	SolvedDepth      int
	Levels           int
	VisitedScrambled int
	VisitedSolved    int
	Intersections    int
	Elapsed          time.Duration
}

// Canonical returns the solution in compact notation.
func (r *Result) Canonical() Sequence {
	return Canonicalize(r.Moves)
}

// Reversed returns the moves that take the solved cube back to the scramble.
func (r *Result) Reversed() []Move {
	return Invert(r.Moves)
}

// FaceTurns returns the number of quarter turns in Moves.
func (r *Result) FaceTurns() int {
	return r.ScrambledDepth + r.SolvedDepth
}

// Solver finds short solutions with a bidirectional breadth-first search.
// A Solver holds no search state and is safe for concurrent use.
type Solver struct {
	cfg *config
}

// NewSolver creates a solver with the given options.
func NewSolver(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cfg: cfg}
}

// Solve solves a cube with default options.
func Solve(ctx context.Context, scrambled Cube) (*Result, error) {
	return NewSolver().Solve(ctx, scrambled)
}

// Solve grows one frontier from the scrambled cube and one from the solved
// cube, a full level at a time each, until they share a state. The returned
// solution has been replayed against the scramble; a solution that does not
// solve it is reported as a *VerificationError.
func (s *Solver) Solve(ctx context.Context, scrambled Cube) (*Result, error) {
	start := time.Now()
	log := s.cfg.logger

	fromScrambled := newFrontier("scrambled", scrambled)
	fromSolved := newFrontier("solved", Solved)

	level := 0
	meetings := intersect(fromScrambled, fromSolved)
	for len(meetings) == 0 {
		if s.cfg.maxDepth > 0 && level >= s.cfg.maxDepth {
			return nil, fmt.Errorf("%w: %d levels", ErrDepthLimit, level)
		}
		if err := s.advance(ctx, fromScrambled, fromSolved); err != nil {
			return nil, err
		}
		level++

		if fromScrambled.exhausted() && fromSolved.exhausted() {
			log.Error().
				Int("level", level).
				Int("visited_scrambled", fromScrambled.size()).
				Int("visited_solved", fromSolved.size()).
				Msg("frontiers exhausted")
			return nil, fmt.Errorf("%w after %d levels", ErrSearchExhausted, level)
		}

		meetings = intersect(fromScrambled, fromSolved)

		log.Debug().
			Int("level", level).
			Int("visited_scrambled", fromScrambled.size()).
			Int("visited_solved", fromSolved.size()).
			Int("frontier_scrambled", fromScrambled.width()).
			Int("frontier_solved", fromSolved.width()).
			Int("meetings", len(meetings)).
			Msg("level advanced")

		if s.cfg.progress != nil {
			s.cfg.progress(Progress{
				Level:             level,
				VisitedScrambled:  fromScrambled.size(),
				VisitedSolved:     fromSolved.size(),
				FrontierScrambled: fromScrambled.width(),
				FrontierSolved:    fromSolved.width(),
				Elapsed:           time.Since(start),
			})
		}
	}

	result, err := assemble(fromScrambled, fromSolved, meetings)
	if err != nil {
		return nil, err
	}
	result.Levels = level
	result.VisitedScrambled = fromScrambled.size()
	result.VisitedSolved = fromSolved.size()
	result.Intersections = len(meetings)

	if err := Verify(scrambled, result.Moves); err != nil {
		log.Error().Err(err).Str("moves", FormatMoves(result.Moves)).Msg("verification failed")
		return nil, err
	}

	result.Elapsed = time.Since(start)
	log.Info().
		Int("moves", len(result.Moves)).
		Int("face_turns", result.FaceTurns()).
		Int("levels", level).
		Dur("elapsed", result.Elapsed).
		Msg("solved")

	return result, nil
}

// advance moves both frontiers forward exactly one level. Neither frontier
// may start the next level until both have finished this one.
func (s *Solver) advance(ctx context.Context, a, b *frontier) error {
	if !s.cfg.parallel {
		if err := a.advance(ctx); err != nil {
			return fmt.Errorf("failed to advance %s frontier: %w", a.name, err)
		}
		if err := b.advance(ctx); err != nil {
			return fmt.Errorf("failed to advance %s frontier: %w", b.name, err)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range []*frontier{a, b} {
		f := f
		g.Go(func() error {
			if err := f.advance(gctx); err != nil {
				return fmt.Errorf("failed to advance %s frontier: %w", f.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// candidate is a meeting with its reconstructed halves. solvedTail is the
// inverse of solvedPath relabelled through sym.
type candidate struct {
	scrambledPath []Move
	solvedPath    []Move
	solvedTail    []Move
	sym           *symmetry
}

func (c *candidate) turns() int {
	return len(c.scrambledPath) + len(c.solvedPath)
}

// better orders candidates by face turns, then rotation length, then the
// share of R, U and F turns.
func (c *candidate) better(o *candidate) bool {
	if c.turns() != o.turns() {
		return c.turns() < o.turns()
	}
	if len(c.sym.moves) != len(o.sym.moves) {
		return len(c.sym.moves) < len(o.sym.moves)
	}
	return c.niceRatio() > o.niceRatio()
}

func (c *candidate) niceRatio() float64 {
	if c.turns() == 0 {
		return 0
	}
	return float64(niceCount(c.scrambledPath)+niceCount(c.solvedTail)) / float64(c.turns())
}

func niceCount(moves []Move) int {
	n := 0
	for _, m := range moves {
		switch m.Face() {
		case FaceR, FaceU, FaceF:
			n++
		}
	}
	return n
}

// assemble picks the best meeting and joins its two half-paths. The meeting
// states are equal only up to a whole-cube rotation S, so the join would be
// scrambledPath, S, inverse(solvedPath). Moving S past the solved half
// relabels those turns and leaves S at the end, where it only re-holds an
// already solved cube and is dropped.
func assemble(fromScrambled, fromSolved *frontier, meetings []meeting) (*Result, error) {
	var best *candidate
	for _, mt := range meetings {
		a := fromScrambled.nodes[mt.scrambled].cube
		b := fromSolved.nodes[mt.solved].cube
		i := reorient(a, b)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s / %s", ErrNoReorientation, a.String(), b.String())
		}
		sym := &symmetries[i]
		solvedPath := fromSolved.path(mt.solved)
		c := &candidate{
			scrambledPath: fromScrambled.path(mt.scrambled),
			solvedPath:    solvedPath,
			solvedTail:    sym.relabel(Invert(solvedPath)),
			sym:           sym,
		}
		if best == nil || c.better(best) {
			best = c
		}
	}

	moves := make([]Move, 0, best.turns())
	moves = append(moves, best.scrambledPath...)
	moves = append(moves, best.solvedTail...)

	return &Result{
		Moves:          moves,
		ScrambledPath:  best.scrambledPath,
		Rotation:       append([]Move(nil), best.sym.moves...),
		SolvedPath:     best.solvedPath,
		ScrambledDepth: len(best.scrambledPath),
		SolvedDepth:    len(best.solvedPath),
	}, nil
}

// Verify replays moves on the scrambled cube and checks that it ends solved.
func Verify(scrambled Cube, moves []Move) error {
	c := scrambled
	c.Apply(moves...)
	if !c.IsSolved() {
		return &VerificationError{Scrambled: scrambled, Moves: append([]Move(nil), moves...)}
	}
	return nil
}
