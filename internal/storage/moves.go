package storage

import (
	"database/sql"
	"fmt"
)

// Move sequences stored per solve.
const (
	SequenceScramble = "scramble"
	SequenceSolution = "solution"
)

// Solution segments.
const (
	SegmentScramble  = "scramble"
	SegmentScrambled = "scrambled"
	SegmentSolved    = "solved"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SolveID   string
	Sequence  string
	Segment   string
	MoveIndex int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

func insertMoves(tx *sql.Tx, solveID string, moves []MoveRecord) error {
	stmt, err := tx.Prepare(`
		INSERT INTO solve_moves (solve_id, sequence, segment, move_index, notation)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range moves {
		if _, err := stmt.Exec(solveID, m.Sequence, m.Segment, m.MoveIndex, m.Notation); err != nil {
			return fmt.Errorf("failed to create move %s/%d: %w", m.Sequence, m.MoveIndex, err)
		}
	}
	return nil
}

// CreateBatch creates multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(solveID string, moves []MoveRecord) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		return insertMoves(tx, solveID, moves)
	})
}

// GetBySolve retrieves one sequence of a solve in order.
func (r *MoveRepository) GetBySolve(solveID, sequence string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, solve_id, sequence, segment, move_index, notation
		FROM solve_moves
		WHERE solve_id = ? AND sequence = ?
		ORDER BY move_index
	`, solveID, sequence)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SolveID, &m.Sequence, &m.Segment, &m.MoveIndex, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return moves, nil
}

// Count returns the number of moves stored for a solve sequence.
func (r *MoveRepository) Count(solveID, sequence string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM solve_moves WHERE solve_id = ? AND sequence = ?",
		solveID, sequence,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get move count: %w", err)
	}
	return count, nil
}
