package pocketcube

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if c != (Cube{}) {
		t.Error("New cube should be the zero value")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.MakeMove(m)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenOppositeIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		start := Scramble(RandomMoves(10, rng)...)
		for _, m := range AllMoves {
			c := start
			c.MakeMove(m)
			c.MakeMove(m.Opposite())
			if c != start {
				t.Errorf("%s %s should restore the cube exactly", m, m.Opposite())
			}
			if !c.Equal(start) {
				t.Errorf("%s %s should restore a symmetry-equal cube", m, m.Opposite())
			}
		}
	}
}

func TestQuadrupleTurnIsIdentity(t *testing.T) {
	start := Scramble(R, U, FPrime, L, D, B)
	for _, m := range AllMoves {
		c := start
		c.Apply(m, m, m, m)
		if !c.Equal(start) {
			t.Errorf("%s x 4 should return to the start", m)
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(R, U, RPrime, UPrime)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestMakeMoveTouchesOnlyFaceSlots(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.MakeMove(m)
		on := map[Slot]bool{}
		for _, s := range slotCycles[m>>1] {
			on[s] = true
		}
		for s := Slot(0); s < NumSlots; s++ {
			if !on[s] && c.Pieces[s].Rotation != WhiteGreen {
				t.Errorf("%s changed slot %d which is not on its face", m, s)
			}
			if on[s] && c.Pieces[s].Rotation == WhiteGreen {
				t.Errorf("%s left slot %d unrotated", m, s)
			}
		}
	}
}

func TestStickersAfterR(t *testing.T) {
	c := Scramble(R)
	// The front face turns up, so the bottom colour appears on the front.
	if got := c.Sticker(TopRightFront, FaceF); got != Yellow {
		t.Errorf("front sticker of TRF = %s, want Y", got)
	}
	if got := c.Sticker(TopRightFront, FaceU); got != Green {
		t.Errorf("up sticker of TRF = %s, want G", got)
	}
	if got := c.Sticker(TopLeftFront, FaceF); got != Green {
		t.Errorf("front sticker of TLF = %s, want G", got)
	}
}

func TestStickersAfterU(t *testing.T) {
	c := Scramble(U)
	if got := c.Sticker(TopRightFront, FaceF); got != Red {
		t.Errorf("front sticker of TRF = %s, want R", got)
	}
	if got := c.Sticker(TopLeftFront, FaceL); got != Green {
		t.Errorf("left sticker of TLF = %s, want G", got)
	}
}

func TestStringSolved(t *testing.T) {
	s := NewCube().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("net should have 6 lines, got %d:\n%s", len(lines), s)
	}
	if strings.TrimSpace(lines[0]) != "W W" {
		t.Errorf("top row = %q, want W W", lines[0])
	}
	if strings.TrimSpace(lines[2]) != "O O G G R R B B" {
		t.Errorf("middle row = %q", lines[2])
	}
	if strings.TrimSpace(lines[5]) != "Y Y" {
		t.Errorf("bottom row = %q, want Y Y", lines[5])
	}
}

func TestStringColourCounts(t *testing.T) {
	s := Scramble(R, U, F, LPrime, D).String()
	for _, col := range Colors {
		if n := strings.Count(s, col.String()); n != 4 {
			t.Errorf("colour %s appears %d times, want 4", col, n)
		}
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	want := Scramble(R, U, RPrime, UPrime)
	if c != want {
		t.Error("ApplyNotation should match Apply")
	}

	if err := c.ApplyNotation("R2"); err == nil {
		t.Error("half-turn suffix should be rejected")
	}
}

func TestRandomMovesNeverUndo(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := RandomMoves(200, rng)
	if len(moves) != 200 {
		t.Fatalf("got %d moves, want 200", len(moves))
	}
	for i := 1; i < len(moves); i++ {
		if moves[i] == moves[i-1].Opposite() {
			t.Errorf("move %d undoes move %d", i, i-1)
		}
	}
}

func TestRandomMovesSeeded(t *testing.T) {
	a := RandomMoves(15, rand.New(rand.NewSource(3)))
	b := RandomMoves(15, rand.New(rand.NewSource(3)))
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("same seed should give the same scramble")
	}
}

func TestRandomScramble(t *testing.T) {
	moves, c := RandomScramble(12)
	if len(moves) != 12 {
		t.Fatalf("got %d moves, want 12", len(moves))
	}
	if c != Scramble(moves...) {
		t.Error("RandomScramble cube should match its moves")
	}
}
