package pocketcube

import (
	"math/rand"
	"strings"

	"lukechampine.com/frand"
)

// Slot indexes a corner position.
type Slot int

const (
	TopRightFront    Slot = 0
	TopRightBack     Slot = 1
	TopLeftBack      Slot = 2
	TopLeftFront     Slot = 3
	BottomRightFront Slot = 4
	BottomRightBack  Slot = 5
	BottomLeftBack   Slot = 6
	BottomLeftFront  Slot = 7

	// NumSlots is the number of corner positions.
	NumSlots = 8
)

// slotCycles[face] lists the slots on a face. A clockwise turn moves the
// piece in slotCycles[face][i] to slotCycles[face][i+1].
var slotCycles = [6][4]Slot{
	{0, 1, 5, 4}, // R
	{0, 4, 7, 3}, // F
	{0, 3, 2, 1}, // U
	{3, 7, 6, 2}, // L
	{1, 2, 6, 5}, // B
	{4, 5, 6, 7}, // D
}

// Cube is a 2x2x2 cube: eight corner pieces in fixed slots. The zero value
// is solved. Cubes are small values and are copied freely.
type Cube struct {
	Pieces [NumSlots]Piece
}

// Solved is the solved cube in its default orientation.
var Solved = Cube{}

// NewCube creates a solved cube with White on top and Green in front.
func NewCube() Cube {
	return Cube{}
}

// Scramble returns a solved cube with the moves applied.
func Scramble(moves ...Move) Cube {
	c := NewCube()
	c.Apply(moves...)
	return c
}

// RandomMoves returns n random quarter turns drawn from rng. Consecutive
// moves never undo each other.
func RandomMoves(n int, rng *rand.Rand) []Move {
	moves := make([]Move, 0, n)
	for len(moves) < n {
		m := Move(rng.Intn(NumMoves))
		if len(moves) > 0 && moves[len(moves)-1] == m.Opposite() {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// RandomScramble returns n random moves from the system CSPRNG and the cube
// they produce.
func RandomScramble(n int) ([]Move, Cube) {
	moves := make([]Move, 0, n)
	for len(moves) < n {
		m := Move(frand.Intn(NumMoves))
		if len(moves) > 0 && moves[len(moves)-1] == m.Opposite() {
			continue
		}
		moves = append(moves, m)
	}
	return moves, Scramble(moves...)
}

// MakeMove turns one face. The four slots on the face are cycled first, then
// each moved piece is re-oriented.
func (c *Cube) MakeMove(m Move) {
	cycle := slotCycles[m>>1]
	p := &c.Pieces

	if m.IsPrime() {
		tmp := p[cycle[0]]
		p[cycle[0]] = p[cycle[1]]
		p[cycle[1]] = p[cycle[2]]
		p[cycle[2]] = p[cycle[3]]
		p[cycle[3]] = tmp
	} else {
		tmp := p[cycle[3]]
		p[cycle[3]] = p[cycle[2]]
		p[cycle[2]] = p[cycle[1]]
		p[cycle[1]] = p[cycle[0]]
		p[cycle[0]] = tmp
	}

	for _, s := range cycle {
		p[s].Rotate(m)
	}
}

// Apply applies a sequence of moves.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.MakeMove(m)
	}
}

// ApplyNotation parses and applies moves from notation.
func (c *Cube) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// IsSolved reports whether the cube is solved in any whole-cube orientation.
func (c Cube) IsSolved() bool {
	return c.Equal(Solved)
}

// Sticker returns the color shown by slot s on face f.
func (c Cube) Sticker(s Slot, f Face) Color {
	return c.Pieces[s].Colors()[f.index()]
}

// netFaces lists each face's slots as seen looking at it, in row order.
var netFaces = map[Face][4]Slot{
	FaceU: {TopLeftBack, TopRightBack, TopLeftFront, TopRightFront},
	FaceL: {TopLeftBack, TopLeftFront, BottomLeftBack, BottomLeftFront},
	FaceF: {TopLeftFront, TopRightFront, BottomLeftFront, BottomRightFront},
	FaceR: {TopRightFront, TopRightBack, BottomRightFront, BottomRightBack},
	FaceB: {TopRightBack, TopLeftBack, BottomRightBack, BottomLeftBack},
	FaceD: {BottomLeftFront, BottomRightFront, BottomLeftBack, BottomRightBack},
}

// String returns the unfolded net of the cube:
//
//	    U
//	L F R B
//	    D
func (c Cube) String() string {
	var sb strings.Builder

	writeRow := func(f Face, row int) {
		slots := netFaces[f]
		sb.WriteString(c.Sticker(slots[row*2], f).String())
		sb.WriteByte(' ')
		sb.WriteString(c.Sticker(slots[row*2+1], f).String())
		sb.WriteByte(' ')
	}

	for row := 0; row < 2; row++ {
		sb.WriteString("    ")
		writeRow(FaceU, row)
		sb.WriteString("\n")
	}
	for row := 0; row < 2; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		sb.WriteString("\n")
	}
	for row := 0; row < 2; row++ {
		sb.WriteString("    ")
		writeRow(FaceD, row)
		sb.WriteString("\n")
	}

	return sb.String()
}
