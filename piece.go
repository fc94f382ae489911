package pocketcube

// ColorSequence holds the colors a piece shows toward each face, indexed in
// Faces order: right, front, up, left, back, down.
type ColorSequence [6]Color

// colorCycles[face] lists the sequence indices whose colors travel one step
// along the cycle when the face turns clockwise. Counter-clockwise turns walk
// the cycle backwards.
var colorCycles = [6][4]int{
	{1, 2, 4, 5}, // R: front -> up -> back -> down
	{2, 0, 5, 3}, // F: up -> right -> down -> left
	{0, 1, 3, 4}, // U: right -> front -> left -> back
	{2, 1, 5, 4}, // L: up -> front -> down -> back
	{2, 3, 5, 0}, // B: up -> left -> down -> right
	{0, 4, 3, 1}, // D: right -> back -> left -> front
}

// Permute returns the sequence after turning face f in the given direction.
func (s ColorSequence) Permute(m Move) ColorSequence {
	cycle := colorCycles[m>>1]
	out := s
	if m.IsPrime() {
		for i := 0; i < 4; i++ {
			out[cycle[i]] = s[cycle[(i+1)%4]]
		}
		return out
	}
	for i := 0; i < 4; i++ {
		out[cycle[(i+1)%4]] = s[cycle[i]]
	}
	return out
}

// Rotation derives the rotation from the up and front colors.
func (s ColorSequence) Rotation() (PieceRotation, error) {
	return FromColorPair(s[2], s[1])
}

// rotateTable[r][m] is the rotation a piece with rotation r takes after move m.
var rotateTable [NumRotations][NumMoves]PieceRotation

func init() {
	for r := PieceRotation(0); r < NumRotations; r++ {
		for _, m := range AllMoves {
			next, err := r.Colors().Permute(m).Rotation()
			if err != nil {
				panic(err)
			}
			rotateTable[r][m] = next
		}
	}
}

// Piece is a corner piece. Its identity is implied by its slot and rotation.
type Piece struct {
	Rotation PieceRotation
}

// Rotate re-orients the piece for a turn of a face it belongs to.
func (p *Piece) Rotate(m Move) {
	p.Rotation = rotateTable[p.Rotation][m]
}

// Colors returns the colors the piece shows toward each face.
func (p Piece) Colors() ColorSequence {
	return p.Rotation.Colors()
}
