package pocketcube

import (
	"errors"
	"testing"
)

func TestFromColorPairRoundTrip(t *testing.T) {
	for r := PieceRotation(0); r < NumRotations; r++ {
		got, err := FromColorPair(r.Top(), r.Front())
		if err != nil {
			t.Fatalf("FromColorPair(%s, %s): %v", r.Top(), r.Front(), err)
		}
		if got != r {
			t.Errorf("FromColorPair(%s, %s) = %s, want %s", r.Top(), r.Front(), got, r)
		}
	}
}

func TestFromColorPairInvalid(t *testing.T) {
	invalid := 0
	for _, top := range Colors {
		for _, front := range Colors {
			_, err := FromColorPair(top, front)
			switch {
			case top == front:
				if !errors.Is(err, ErrRepeatedColor) {
					t.Errorf("(%s, %s): expected ErrRepeatedColor, got %v", top, front, err)
				}
				invalid++
			case top.Opposite() == front:
				if !errors.Is(err, ErrOppositeColors) {
					t.Errorf("(%s, %s): expected ErrOppositeColors, got %v", top, front, err)
				}
				invalid++
			default:
				if err != nil {
					t.Errorf("(%s, %s): unexpected error %v", top, front, err)
				}
			}
		}
	}
	if invalid != 12 {
		t.Errorf("expected 12 invalid pairs, got %d", invalid)
	}
}

func TestFromColorPairErrorType(t *testing.T) {
	_, err := FromColorPair(Red, Orange)
	var pe *ColorPairError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ColorPairError, got %T", err)
	}
	if pe.Top != Red || pe.Front != Orange {
		t.Errorf("error carries (%s, %s), want (R, O)", pe.Top, pe.Front)
	}
}

func TestMustFromColorPairPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFromColorPair should panic on a repeated colour")
		}
	}()
	MustFromColorPair(White, White)
}

func TestMirroredPairsDiffer(t *testing.T) {
	for r := PieceRotation(0); r < NumRotations; r++ {
		m := MustFromColorPair(r.Front(), r.Top())
		if r.Right() == m.Right() {
			t.Errorf("%s and %s should have mirrored right colours", r, m)
		}
		if r.Right() != m.Right().Opposite() {
			t.Errorf("%s right=%s, %s right=%s: expected opposites", r, r.Right(), m, m.Right())
		}
	}
}

func TestColorsHaveEveryColorOnce(t *testing.T) {
	for r := PieceRotation(0); r < NumRotations; r++ {
		seen := map[Color]bool{}
		for _, c := range r.Colors() {
			seen[c] = true
		}
		if len(seen) != 6 {
			t.Errorf("%s shows %d distinct colours, want 6", r, len(seen))
		}
	}
}

func TestSolvedRotation(t *testing.T) {
	var r PieceRotation
	if r.Top() != White || r.Front() != Green || r.Right() != Red {
		t.Errorf("zero rotation = top %s front %s right %s, want W G R", r.Top(), r.Front(), r.Right())
	}
}

func TestRotateTableIsPermutation(t *testing.T) {
	for _, m := range AllMoves {
		seen := map[PieceRotation]bool{}
		for r := PieceRotation(0); r < NumRotations; r++ {
			next := rotateTable[r][m]
			if rotateTable[next][m.Opposite()] != r {
				t.Errorf("%s then %s should restore %s", m, m.Opposite(), r)
			}
			seen[next] = true
		}
		if len(seen) != NumRotations {
			t.Errorf("%s maps rotations onto %d values, want 24", m, len(seen))
		}
	}
}

func TestRotateR(t *testing.T) {
	p := Piece{}
	p.Rotate(R)
	// Front colour turns up; bottom colour turns to the front.
	if p.Rotation != GreenYellow {
		t.Errorf("R on solved piece = %s, want GY", p.Rotation)
	}
}

func TestOppositeFacesTurnPiecesAlike(t *testing.T) {
	pairs := [][2]Move{{R, LPrime}, {U, DPrime}, {F, BPrime}}
	for _, pr := range pairs {
		for r := PieceRotation(0); r < NumRotations; r++ {
			if rotateTable[r][pr[0]] != rotateTable[r][pr[1]] {
				t.Errorf("%s and %s should re-orient %s the same way", pr[0], pr[1], r)
			}
		}
	}
}

func TestPermuteMatchesGeometry(t *testing.T) {
	s := ColorSequence{Red, Green, White, Orange, Blue, Yellow}
	tests := []struct {
		move Move
		want ColorSequence
	}{
		{R, ColorSequence{Red, Yellow, Green, Orange, White, Blue}},
		{L, ColorSequence{Red, White, Blue, Orange, Yellow, Green}},
		{U, ColorSequence{Blue, Red, White, Green, Orange, Yellow}},
		{D, ColorSequence{Green, Orange, White, Blue, Red, Yellow}},
		{F, ColorSequence{White, Green, Orange, Yellow, Blue, Red}},
		{B, ColorSequence{Yellow, Green, Red, White, Blue, Orange}},
	}
	for _, tt := range tests {
		if got := s.Permute(tt.move); got != tt.want {
			t.Errorf("Permute(%s) = %v, want %v", tt.move, got, tt.want)
		}
		if back := tt.want.Permute(tt.move.Opposite()); back != s {
			t.Errorf("Permute(%s) did not undo %s", tt.move.Opposite(), tt.move)
		}
	}
}
