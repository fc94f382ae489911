package pocketcube

import "strings"

// Turn is the net amount a face has been turned.
type Turn int

const (
	Nothing Turn = iota // Cancelled
	CW                  // Clockwise quarter turn
	CCW                 // Counter-clockwise quarter turn
	Half                // 180 degrees
)

// combine merges two turns of the same face.
func (t Turn) combine(o Turn) Turn {
	switch {
	case t == Nothing:
		return o
	case o == Nothing:
		return t
	case t == Half && o == Half:
		return Nothing
	case t == Half:
		return o.inverse()
	case o == Half:
		return t.inverse()
	case t == o:
		return Half
	default:
		return Nothing
	}
}

func (t Turn) inverse() Turn {
	switch t {
	case CW:
		return CCW
	case CCW:
		return CW
	}
	return t
}

// Token is one entry of compact notation: a face and its net turn.
type Token struct {
	Face Face
	Turn Turn
}

// Notation returns the token in standard notation. Examples: R, R', R2
func (t Token) Notation() string {
	switch t.Turn {
	case CW:
		return string(t.Face)
	case CCW:
		return string(t.Face) + "'"
	case Half:
		return string(t.Face) + "2"
	}
	return ""
}

func (t Token) String() string {
	return t.Notation()
}

// Moves expands the token back into quarter turns. Half turns become two
// clockwise turns.
func (t Token) Moves() []Move {
	m, err := NewMove(t.Face, false)
	if err != nil {
		return nil
	}
	switch t.Turn {
	case CW:
		return []Move{m}
	case CCW:
		return []Move{m.Opposite()}
	case Half:
		return []Move{m, m}
	}
	return nil
}

// Sequence is a canonicalized move list.
type Sequence []Token

// Canonicalize collapses adjacent turns of the same face: two equal quarter
// turns become a half turn, a turn and its inverse cancel, and so on. Turns
// of different faces are never merged or reordered, even when they commute.
func Canonicalize(moves []Move) Sequence {
	stack := make([]Token, 0, len(moves))
	for _, m := range moves {
		tok := Token{Face: m.Face(), Turn: CW}
		if m.IsPrime() {
			tok.Turn = CCW
		}
		stack = append(stack, tok)

		for len(stack) >= 2 {
			top, below := stack[len(stack)-1], stack[len(stack)-2]
			if top.Face != below.Face {
				break
			}
			stack = stack[:len(stack)-2]
			if merged := below.Turn.combine(top.Turn); merged != Nothing {
				stack = append(stack, Token{Face: top.Face, Turn: merged})
				break
			}
		}
	}
	return stack
}

// Moves expands the sequence back into quarter turns.
func (s Sequence) Moves() []Move {
	var moves []Move
	for _, t := range s {
		moves = append(moves, t.Moves()...)
	}
	return moves
}

// Len returns the number of tokens.
func (s Sequence) Len() int {
	return len(s)
}

// QuarterTurns returns the length in the quarter-turn metric.
func (s Sequence) QuarterTurns() int {
	n := 0
	for _, t := range s {
		switch t.Turn {
		case CW, CCW:
			n++
		case Half:
			n += 2
		}
	}
	return n
}

// Reversed returns the canonical form of the inverse sequence.
func (s Sequence) Reversed() Sequence {
	return Canonicalize(Invert(s.Moves()))
}

// String formats the sequence as space-separated notation.
func (s Sequence) String() string {
	parts := make([]string, 0, len(s))
	for _, t := range s {
		if t.Turn == Nothing {
			continue
		}
		parts = append(parts, t.Notation())
	}
	return strings.Join(parts, " ")
}
