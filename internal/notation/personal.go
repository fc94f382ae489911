// Package notation renders moves in spoken, hand-held phrasing.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/pocketcube"
)

// phrases maps each face to its (clockwise, counter-clockwise) phrasing.
// Reference frame: White on top, Green in front, facing the cube.
var phrases = map[pocketcube.Face][2]string{
	pocketcube.FaceR: {"R up", "R down"},
	pocketcube.FaceL: {"L down", "L up"},
	pocketcube.FaceU: {"T rotate right", "T rotate left"},
	pocketcube.FaceD: {"B rotate right", "B rotate left"},
	pocketcube.FaceF: {"F rotate clockwise", "F rotate anti-clockwise"},
	pocketcube.FaceB: {"Back rotate clockwise", "Back rotate anti-clockwise"},
}

// ToPersonalNotation converts a compact token to personal notation.
//
// Mapping:
//
//	R  -> "R up"            R' -> "R down"          R2 -> "R up x 2"
//	L  -> "L down"          L' -> "L up"            L2 -> "L down x 2"
//	U  -> "T rotate right"  U' -> "T rotate left"   U2 -> "T rotate right x 2"
//	D  -> "B rotate right"  D' -> "B rotate left"   D2 -> "B rotate right x 2"
//	F  -> "F rotate clockwise"     F' -> "F rotate anti-clockwise"
//	B  -> "Back rotate clockwise"  B' -> "Back rotate anti-clockwise"
func ToPersonalNotation(t pocketcube.Token) string {
	p, ok := phrases[t.Face]
	if !ok {
		return t.Notation()
	}

	switch t.Turn {
	case pocketcube.CW:
		return p[0]
	case pocketcube.CCW:
		return p[1]
	case pocketcube.Half:
		return p[0] + " x 2"
	}
	return t.Notation()
}

// MovePhrase converts a single quarter turn to personal notation.
func MovePhrase(m pocketcube.Move) string {
	t := pocketcube.Token{Face: m.Face(), Turn: pocketcube.CW}
	if m.IsPrime() {
		t.Turn = pocketcube.CCW
	}
	return ToPersonalNotation(t)
}

// ToPersonalSequence converts a sequence to personal notation strings.
func ToPersonalSequence(seq pocketcube.Sequence) []string {
	result := make([]string, 0, len(seq))
	for _, t := range seq {
		if t.Turn == pocketcube.Nothing {
			continue
		}
		result = append(result, ToPersonalNotation(t))
	}
	return result
}

// FormatPersonalSequence formats a sequence as a comma-separated personal
// notation string.
func FormatPersonalSequence(seq pocketcube.Sequence) string {
	return strings.Join(ToPersonalSequence(seq), ", ")
}
