package pocketcube

import (
	"math/rand"
	"testing"
)

func TestSymmetriesAreDistinct(t *testing.T) {
	seen := map[Cube]bool{}
	for _, c := range Scramble(R, U, FPrime, L).Orientations() {
		seen[c] = true
	}
	if len(seen) != NumSymmetries {
		t.Errorf("expected %d distinct orientations, got %d", NumSymmetries, len(seen))
	}
}

func TestSymmetryTablesMatchMoves(t *testing.T) {
	c := Scramble(R, U, FPrime, L, DPrime, B, R)
	for i := range symmetries {
		want := c
		want.Apply(symmetries[i].moves...)
		if got := symmetries[i].apply(c); got != want {
			t.Errorf("symmetry %d (%s): table image differs from move image", i, FormatMoves(symmetries[i].moves))
		}
	}
}

func TestSolvedEqualsEveryOrientation(t *testing.T) {
	for i, c := range Solved.Orientations() {
		if !c.Equal(Solved) {
			t.Errorf("orientation %d of solved cube should equal solved", i)
		}
		if !c.IsSolved() {
			t.Errorf("orientation %d of solved cube should be solved", i)
		}
	}
}

func TestEqualIsSymmetric(t *testing.T) {
	a := Scramble(R, U)
	b := a
	b.Apply(F, BPrime, U, DPrime)
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("whole-cube rotation should preserve equality both ways")
	}
	if a.Equal(Scramble(R, UPrime)) {
		t.Error("R U should not equal R U'")
	}
}

func TestReorient(t *testing.T) {
	a := Scramble(F, L, D)
	b := a
	b.Apply(RPrime, L, UPrime, D)

	moves, ok := Reorient(a, b)
	if !ok {
		t.Fatal("Reorient should find a re-orientation")
	}
	c := a
	c.Apply(moves...)
	if c != b {
		t.Errorf("Reorient moves %q do not map a onto b", FormatMoves(moves))
	}

	if _, ok := Reorient(a, Scramble(F, L)); ok {
		t.Error("Reorient should fail for different cubes")
	}
}

func TestReorientIdentity(t *testing.T) {
	a := Scramble(B, U)
	moves, ok := Reorient(a, a)
	if !ok || len(moves) != 0 {
		t.Errorf("Reorient(a, a) = %q, %v; want no moves", FormatMoves(moves), ok)
	}
}

func TestKeyMatchesEqual(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 300; trial++ {
		a := Scramble(RandomMoves(rng.Intn(8), rng)...)
		b := Scramble(RandomMoves(rng.Intn(4), rng)...)
		if (a.Key() == b.Key()) != a.Equal(b) {
			t.Errorf("Key and Equal disagree for\n%s\n%s", a.String(), b.String())
		}
	}
}

func TestKeyIsInvariant(t *testing.T) {
	c := Scramble(R, U, L, D, F)
	k := c.Key()
	for i, o := range c.Orientations() {
		if o.Key() != k {
			t.Errorf("orientation %d has a different key", i)
		}
	}
}

func TestPackUnpack(t *testing.T) {
	c := Scramble(R, U, L, D, F, B)
	if got := Unpack(c.Pack()); got != c {
		t.Error("Unpack(Pack(c)) should return c")
	}
}

func TestRelabelCommutesWithRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := range symmetries {
		sym := &symmetries[i]
		for m := Move(0); m < NumMoves; m++ {
			c := Scramble(RandomMoves(6, rng)...)

			want := c
			want.Apply(sym.moves...)
			want.MakeMove(m)

			got := c
			got.MakeMove(sym.conj[m])
			got.Apply(sym.moves...)

			if got != want {
				t.Errorf("symmetry %d (%s): %s relabelled as %s does not commute",
					i, FormatMoves(sym.moves), m, sym.conj[m])
			}
			if sym.conj[m.Opposite()] != sym.conj[m].Opposite() {
				t.Errorf("symmetry %d: relabelling %s does not preserve inverses", i, m)
			}
		}
	}
}

func TestRelabelQuarterTurnAboutX(t *testing.T) {
	// R L' turns the cube about the R-L axis, carrying U onto F.
	var sym *symmetry
	for i := range symmetries {
		if FormatMoves(symmetries[i].moves) == "R L'" {
			sym = &symmetries[i]
		}
	}
	if sym == nil {
		t.Fatal("R L' should be one of the symmetries")
	}

	got := FormatMoves(sym.relabel([]Move{R, F, U, L, B, D, UPrime}))
	if want := "R D F L U B F'"; got != want {
		t.Errorf("relabel = %q, want %q", got, want)
	}
}
