package pocketcube

import (
	"strings"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceU Face = "U" // Up
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
	FaceD Face = "D" // Down
)

// Faces lists the faces in axis order. The index of a face in this array is
// also its index in a ColorSequence.
var Faces = [6]Face{FaceR, FaceF, FaceU, FaceL, FaceB, FaceD}

func (f Face) index() int {
	switch f {
	case FaceR:
		return 0
	case FaceF:
		return 1
	case FaceU:
		return 2
	case FaceL:
		return 3
	case FaceB:
		return 4
	case FaceD:
		return 5
	}
	return -1
}

// Move is a quarter turn of one face. The low bit is the direction
// (0 clockwise, 1 counter-clockwise) and the remaining bits index Faces.
type Move uint8

const (
	R Move = iota
	RPrime
	F
	FPrime
	U
	UPrime
	L
	LPrime
	B
	BPrime
	D
	DPrime

	// NumMoves is the number of distinct quarter turns.
	NumMoves = 12
)

// AllMoves lists every quarter turn.
var AllMoves = [NumMoves]Move{R, RPrime, F, FPrime, U, UPrime, L, LPrime, B, BPrime, D, DPrime}

// NewMove builds the move turning face f, counter-clockwise when prime is set.
func NewMove(f Face, prime bool) (Move, error) {
	idx := f.index()
	if idx < 0 {
		return 0, ErrInvalidNotation
	}
	m := Move(idx << 1)
	if prime {
		m |= 1
	}
	return m, nil
}

// Face returns the face turned by the move.
func (m Move) Face() Face {
	return Faces[m>>1]
}

// IsPrime reports whether the move is counter-clockwise.
func (m Move) IsPrime() bool {
	return m&1 == 1
}

// Opposite returns the inverse move. R becomes R', R' becomes R.
func (m Move) Opposite() Move {
	return m ^ 1
}

// Valid reports whether m is one of the 12 quarter turns.
func (m Move) Valid() bool {
	return m < NumMoves
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if !m.Valid() {
		return "?"
	}
	if m.IsPrime() {
		return string(m.Face()) + "'"
	}
	return string(m.Face())
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single move: a face letter optionally followed by an
// apostrophe. Half-turn suffixes are not accepted.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return 0, ErrInvalidNotation
	}

	prime := false
	if len(s) == 2 {
		switch s[1] {
		case '\'', '`':
			prime = true
		default:
			return 0, ErrInvalidNotation
		}
	}

	return NewMove(face, prime)
}

// ParseMoves parses a move sequence such as "R U R' U'". Moves may be
// separated by whitespace or commas, or written back to back ("RUR'U'").
func ParseMoves(s string) ([]Move, error) {
	moves := make([]Move, 0, len(s)/2)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ',' {
			continue
		}
		end := i + 1
		if end < len(s) && (s[end] == '\'' || s[end] == '`') {
			end++
		}
		m, err := ParseMove(s[i:end])
		if err != nil {
			return nil, &NotationError{Input: s, Offset: i, Err: err}
		}
		moves = append(moves, m)
		i = end - 1
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes moves: each move inverted, in
// reverse order.
func Invert(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Opposite()
	}
	return out
}
