package recorder

import (
	"fmt"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

// Stored is a solve read back from the database.
type Stored struct {
	Solve    *storage.Solve
	Scramble []pocketcube.Move
	Solution []pocketcube.Move
	Segments []string
}

// Load reads a solve's moves and checks the stored solution still solves
// the stored scramble.
func Load(db *storage.DB, solve *storage.Solve) (*Stored, error) {
	moveRepo := storage.NewMoveRepository(db)

	scrambleRows, err := moveRepo.GetBySolve(solve.SolveID, storage.SequenceScramble)
	if err != nil {
		return nil, err
	}
	solutionRows, err := moveRepo.GetBySolve(solve.SolveID, storage.SequenceSolution)
	if err != nil {
		return nil, err
	}

	st := &Stored{Solve: solve}
	if st.Scramble, err = parseRows(scrambleRows); err != nil {
		return nil, fmt.Errorf("failed to parse scramble of %s: %w", solve.SolveID, err)
	}
	if st.Solution, err = parseRows(solutionRows); err != nil {
		return nil, fmt.Errorf("failed to parse solution of %s: %w", solve.SolveID, err)
	}
	for _, r := range solutionRows {
		st.Segments = append(st.Segments, r.Segment)
	}

	if err := pocketcube.Verify(st.Cube(), st.Solution); err != nil {
		return nil, fmt.Errorf("stored solve %s: %w", solve.SolveID, err)
	}
	return st, nil
}

// Cube returns the scrambled cube.
func (st *Stored) Cube() pocketcube.Cube {
	return pocketcube.Scramble(st.Scramble...)
}

func parseRows(rows []storage.MoveRecord) ([]pocketcube.Move, error) {
	moves := make([]pocketcube.Move, 0, len(rows))
	for _, r := range rows {
		m, err := pocketcube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d %q: %w", r.MoveIndex, r.Notation, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
