package notation

import (
	"testing"

	"github.com/SeamusWaldron/pocketcube"
)

func TestToPersonalNotation(t *testing.T) {
	tests := []struct {
		token pocketcube.Token
		want  string
	}{
		{pocketcube.Token{Face: pocketcube.FaceR, Turn: pocketcube.CW}, "R up"},
		{pocketcube.Token{Face: pocketcube.FaceL, Turn: pocketcube.CW}, "L down"},
		{pocketcube.Token{Face: pocketcube.FaceU, Turn: pocketcube.CCW}, "T rotate left"},
		{pocketcube.Token{Face: pocketcube.FaceD, Turn: pocketcube.Half}, "B rotate right x 2"},
		{pocketcube.Token{Face: pocketcube.FaceB, Turn: pocketcube.CCW}, "Back rotate anti-clockwise"},
	}
	for _, tt := range tests {
		if got := ToPersonalNotation(tt.token); got != tt.want {
			t.Errorf("ToPersonalNotation(%s) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestMovePhrase(t *testing.T) {
	if got := MovePhrase(pocketcube.FPrime); got != "F rotate anti-clockwise" {
		t.Errorf("MovePhrase(F') = %q", got)
	}
}

func TestFormatPersonalSequence(t *testing.T) {
	seq := pocketcube.Canonicalize([]pocketcube.Move{pocketcube.R, pocketcube.U, pocketcube.U})
	want := "R up, T rotate right x 2"
	if got := FormatPersonalSequence(seq); got != want {
		t.Errorf("FormatPersonalSequence = %q, want %q", got, want)
	}
	if got := FormatPersonalSequence(nil); got != "" {
		t.Errorf("empty sequence = %q, want empty", got)
	}
}
