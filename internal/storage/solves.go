package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timeLayout has fixed width so stored times sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Solve represents one solver run in the database.
type Solve struct {
	SolveID          string
	CreatedAt        time.Time
	ScrambleText     string
	SolutionText     string
	CanonicalText    string
	ScrambledDepth   int
	SolvedDepth      int
	RotationLen      int
	Levels           int
	VisitedScrambled int
	VisitedSolved    int
	Intersections    int
	DurationMs       int64
	MaxDepth         int
	Parallel         bool
	Notes            *string
}

// FaceTurns returns the number of quarter turns in the solution.
func (s *Solve) FaceTurns() int {
	return s.ScrambledDepth + s.SolvedDepth
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

const solveColumns = `solve_id, created_at, scramble_text, solution_text, canonical_text,
	scrambled_depth, solved_depth, rotation_len, levels,
	visited_scrambled, visited_solved, intersections, duration_ms,
	max_depth, parallel, notes`

func insertSolve(ex execer, s *Solve) error {
	if s.SolveID == "" {
		s.SolveID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	_, err := ex.Exec(`
		INSERT INTO solves (`+solveColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.SolveID, s.CreatedAt.UTC().Format(timeLayout), s.ScrambleText, s.SolutionText, s.CanonicalText,
		s.ScrambledDepth, s.SolvedDepth, s.RotationLen, s.Levels,
		s.VisitedScrambled, s.VisitedSolved, s.Intersections, s.DurationMs,
		s.MaxDepth, s.Parallel, s.Notes)
	if err != nil {
		return fmt.Errorf("failed to create solve: %w", err)
	}
	return nil
}

// Create stores a solve and returns its ID. A missing ID or creation time
// is filled in.
func (r *SolveRepository) Create(s *Solve) (string, error) {
	if err := insertSolve(r.db, s); err != nil {
		return "", err
	}
	return s.SolveID, nil
}

// CreateWithMoves stores a solve and its moves in one transaction.
func (r *SolveRepository) CreateWithMoves(s *Solve, moves []MoveRecord) (string, error) {
	err := r.db.Transaction(func(tx *sql.Tx) error {
		if err := insertSolve(tx, s); err != nil {
			return err
		}
		return insertMoves(tx, s.SolveID, moves)
	})
	if err != nil {
		return "", err
	}
	return s.SolveID, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAtStr string
	var notes sql.NullString

	err := row.Scan(
		&s.SolveID, &createdAtStr, &s.ScrambleText, &s.SolutionText, &s.CanonicalText,
		&s.ScrambledDepth, &s.SolvedDepth, &s.RotationLen, &s.Levels,
		&s.VisitedScrambled, &s.VisitedSolved, &s.Intersections, &s.DurationMs,
		&s.MaxDepth, &s.Parallel, &notes,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, err = time.Parse(timeLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAtStr, err)
	}
	if notes.Valid {
		s.Notes = &notes.String
	}
	return &s, nil
}

// Get retrieves a solve by ID. It returns nil when no solve matches.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT `+solveColumns+`
		FROM solves
		WHERE solve_id = ?
	`, solveID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// likeEscaper quotes LIKE wildcards so a prefix matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindByPrefix returns the solve whose ID starts with prefix. It returns nil
// when nothing matches and an error when the prefix is ambiguous.
func (r *SolveRepository) FindByPrefix(prefix string) (*Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id FROM solves
		WHERE solve_id LIKE ? || '%' ESCAPE '\'
		LIMIT 2
	`, likeEscaper.Replace(prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to find solve: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan solve ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find solve: %w", err)
	}

	switch len(ids) {
	case 0:
		return nil, nil
	case 1:
		return r.Get(ids[0])
	default:
		return nil, fmt.Errorf("solve ID prefix %q is ambiguous", prefix)
	}
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+`
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}

	return solves, nil
}

// Delete deletes a solve and all related data (cascading).
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// Count returns the number of stored solves.
func (r *SolveRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

// Stats summarizes all stored solves.
type Stats struct {
	Count            int
	AvgFaceTurns     float64
	MaxFaceTurns     int
	AvgDurationMs    float64
	TotalVisited     int64
	AvgRotationMoves float64
}

// Stats returns aggregate statistics over all solves.
func (r *SolveRepository) Stats() (*Stats, error) {
	var st Stats
	err := r.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(AVG(scrambled_depth + solved_depth), 0),
			COALESCE(MAX(scrambled_depth + solved_depth), 0),
			COALESCE(AVG(duration_ms), 0),
			COALESCE(SUM(visited_scrambled + visited_solved), 0),
			COALESCE(AVG(rotation_len), 0)
		FROM solves
	`).Scan(&st.Count, &st.AvgFaceTurns, &st.MaxFaceTurns, &st.AvgDurationMs, &st.TotalVisited, &st.AvgRotationMoves)
	if err != nil {
		return nil, fmt.Errorf("failed to get solve stats: %w", err)
	}
	return &st, nil
}
