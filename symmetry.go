package pocketcube

import "fmt"

// Whole-cube re-orientations expressed as face turns. Turning two opposite
// faces in opposite directions rotates the entire cube.
var (
	// orientations bring each of the six faces to the top.
	orientations = [6][]Move{
		{},
		{R, LPrime},
		{RPrime, L},
		{R, LPrime, R, LPrime},
		{F, BPrime},
		{FPrime, B},
	}

	// spins rotate the cube about the vertical axis.
	spins = [4][]Move{
		{},
		{U, DPrime},
		{UPrime, D},
		{U, DPrime, U, DPrime},
	}
)

// NumSymmetries is the number of whole-cube orientations.
const NumSymmetries = 24

// symmetry is a whole-cube rotation as a slot permutation plus a per-slot
// re-orientation of the moved piece. conj maps each move m to the move m'
// with the rotation followed by m equal to m' followed by the rotation.
type symmetry struct {
	moves []Move
	slot  [NumSlots]Slot
	rot   [NumSlots][NumRotations]PieceRotation
	conj  [NumMoves]Move
}

var symmetries [NumSymmetries]symmetry

func init() {
	i := 0
	for _, o := range orientations {
		for _, s := range spins {
			seq := make([]Move, 0, len(o)+len(s))
			seq = append(seq, o...)
			seq = append(seq, s...)
			symmetries[i] = buildSymmetry(seq)
			i++
		}
	}
}

// buildSymmetry follows every (slot, rotation) through the move sequence.
func buildSymmetry(seq []Move) symmetry {
	sym := symmetry{moves: seq}
	for s := Slot(0); s < NumSlots; s++ {
		pos := s
		for _, m := range seq {
			pos = nextSlot(pos, m)
		}
		sym.slot[s] = pos

		for r := PieceRotation(0); r < NumRotations; r++ {
			pos, cur := s, r
			for _, m := range seq {
				if onFace(pos, m) {
					cur = rotateTable[cur][m]
					pos = nextSlot(pos, m)
				}
			}
			sym.rot[s][r] = cur
		}
	}

	for m := Move(0); m < NumMoves; m++ {
		want := Solved
		want.Apply(seq...)
		want.MakeMove(m)
		found := false
		for n := Move(0); n < NumMoves && !found; n++ {
			got := Solved
			got.MakeMove(n)
			got.Apply(seq...)
			if got.Pieces == want.Pieces {
				sym.conj[m] = n
				found = true
			}
		}
		if !found {
			panic(fmt.Sprintf("no conjugate of %s under %s", m, FormatMoves(seq)))
		}
	}
	return sym
}

// relabel rewrites moves so that the rotation followed by moves equals the
// relabelled moves followed by the rotation.
func (sym *symmetry) relabel(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = sym.conj[m]
	}
	return out
}

func onFace(s Slot, m Move) bool {
	for _, c := range slotCycles[m>>1] {
		if c == s {
			return true
		}
	}
	return false
}

// nextSlot returns where the piece in slot s ends up after move m.
func nextSlot(s Slot, m Move) Slot {
	cycle := slotCycles[m>>1]
	for i, c := range cycle {
		if c != s {
			continue
		}
		if m.IsPrime() {
			return cycle[(i+3)%4]
		}
		return cycle[(i+1)%4]
	}
	return s
}

func (sym *symmetry) apply(c Cube) Cube {
	var out Cube
	for s := Slot(0); s < NumSlots; s++ {
		out.Pieces[sym.slot[s]].Rotation = sym.rot[s][c.Pieces[s].Rotation]
	}
	return out
}

// Equal reports whether c and other are the same cube held differently: some
// whole-cube re-orientation of c matches other piece for piece.
func (c Cube) Equal(other Cube) bool {
	return reorient(c, other) >= 0
}

// Reorient returns the face turns that re-orient a so that it matches b
// exactly. It reports false when a and b are not the same cube.
func Reorient(a, b Cube) ([]Move, bool) {
	i := reorient(a, b)
	if i < 0 {
		return nil, false
	}
	return append([]Move(nil), symmetries[i].moves...), true
}

// reorient returns the index of the first symmetry carrying a onto b, or -1.
func reorient(a, b Cube) int {
	for i := range symmetries {
		if symmetries[i].apply(a).Pieces == b.Pieces {
			return i
		}
	}
	return -1
}

// Pack encodes the raw piece array in 40 bits.
func (c Cube) Pack() uint64 {
	var k uint64
	for s := 0; s < NumSlots; s++ {
		k |= uint64(c.Pieces[s].Rotation) << (5 * s)
	}
	return k
}

// Unpack decodes a value produced by Pack.
func Unpack(k uint64) Cube {
	var c Cube
	for s := 0; s < NumSlots; s++ {
		c.Pieces[s].Rotation = PieceRotation((k >> (5 * s)) & 0x1f)
	}
	return c
}

// Key returns a symmetry-invariant key: the smallest packed encoding among
// the 24 re-orientations of c. Two cubes have the same key exactly when
// they are Equal.
func (c Cube) Key() uint64 {
	best := c.Pack()
	for i := 1; i < NumSymmetries; i++ {
		if k := symmetries[i].apply(c).Pack(); k < best {
			best = k
		}
	}
	return best
}

// Orientations returns all 24 re-orientations of c.
func (c Cube) Orientations() []Cube {
	out := make([]Cube, NumSymmetries)
	for i := range symmetries {
		out[i] = symmetries[i].apply(c)
	}
	return out
}
