package pocketcube

import "fmt"

// PieceRotation is one of the 24 orientations of a corner piece, identified
// by the colors facing up and front. The zero value is White top, Green
// front, which is the orientation of every piece on a solved cube.
type PieceRotation byte

const (
	WhiteGreen PieceRotation = iota
	WhiteBlue
	WhiteRed
	WhiteOrange
	YellowGreen
	YellowBlue
	YellowRed
	YellowOrange
	GreenWhite
	GreenYellow
	GreenRed
	GreenOrange
	BlueWhite
	BlueYellow
	BlueRed
	BlueOrange
	RedWhite
	RedYellow
	RedGreen
	RedBlue
	OrangeWhite
	OrangeYellow
	OrangeGreen
	OrangeBlue

	// NumRotations is the number of valid piece orientations.
	NumRotations = 24
)

// rotationPairs[r] is the (top, front) color pair of rotation r.
var rotationPairs = [NumRotations][2]Color{
	{White, Green}, {White, Blue}, {White, Red}, {White, Orange},
	{Yellow, Green}, {Yellow, Blue}, {Yellow, Red}, {Yellow, Orange},
	{Green, White}, {Green, Yellow}, {Green, Red}, {Green, Orange},
	{Blue, White}, {Blue, Yellow}, {Blue, Red}, {Blue, Orange},
	{Red, White}, {Red, Yellow}, {Red, Green}, {Red, Blue},
	{Orange, White}, {Orange, Yellow}, {Orange, Green}, {Orange, Blue},
}

// rightColors[r] is the color facing right for rotation r. It is the
// cross product of the top and front color axes, so swapping top and front
// yields the mirrored right color.
var rightColors = [NumRotations]Color{
	Red, Orange, Blue, Green,
	Orange, Red, Green, Blue,
	Orange, Red, White, Yellow,
	Red, Orange, Yellow, White,
	Green, Blue, Yellow, White,
	Blue, Green, White, Yellow,
}

// ColorPairError reports an invalid (top, front) pair.
type ColorPairError struct {
	Top   Color
	Front Color
	Err   error
}

func (e *ColorPairError) Error() string {
	return fmt.Sprintf("%v (top=%s front=%s)", e.Err, e.Top.Name(), e.Front.Name())
}

func (e *ColorPairError) Unwrap() error {
	return e.Err
}

// FromColorPair returns the rotation whose top and front faces show the
// given colors. Repeated or opposite colors return a *ColorPairError.
func FromColorPair(top, front Color) (PieceRotation, error) {
	if !top.Valid() || !front.Valid() {
		return 0, &ColorPairError{Top: top, Front: front, Err: ErrInvalidColor}
	}
	if top == front {
		return 0, &ColorPairError{Top: top, Front: front, Err: ErrRepeatedColor}
	}
	if top.Opposite() == front {
		return 0, &ColorPairError{Top: top, Front: front, Err: ErrOppositeColors}
	}

	// Fronts are enumerated in ascending order, skipping the top axis.
	idx := front
	if front > top|1 {
		idx -= 2
	}
	return PieceRotation(int(top)*4 + int(idx)), nil
}

// MustFromColorPair is like FromColorPair but panics on an invalid pair.
func MustFromColorPair(top, front Color) PieceRotation {
	r, err := FromColorPair(top, front)
	if err != nil {
		panic(err)
	}
	return r
}

// Top returns the color facing up.
func (r PieceRotation) Top() Color {
	return rotationPairs[r][0]
}

// Front returns the color facing front.
func (r PieceRotation) Front() Color {
	return rotationPairs[r][1]
}

// Right returns the color facing right.
func (r PieceRotation) Right() Color {
	return rightColors[r]
}

// Colors returns the six face colors of the rotation.
func (r PieceRotation) Colors() ColorSequence {
	top, front, right := r.Top(), r.Front(), r.Right()
	return ColorSequence{right, front, top, right.Opposite(), front.Opposite(), top.Opposite()}
}

// Valid reports whether r is one of the 24 rotations.
func (r PieceRotation) Valid() bool {
	return r < NumRotations
}

func (r PieceRotation) String() string {
	if !r.Valid() {
		return "??"
	}
	return r.Top().String() + r.Front().String()
}
