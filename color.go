package pocketcube

// Color represents a sticker color.
// Opposite colors differ only in the lowest bit.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// Colors lists all six colors in their enumeration order.
var Colors = [6]Color{White, Yellow, Green, Blue, Red, Orange}

// Opposite returns the color on the opposite face of a solved cube.
func (c Color) Opposite() Color {
	return c ^ 1
}

// Valid reports whether c is one of the six colors.
func (c Color) Valid() bool {
	return c <= Orange
}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the full lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// ParseColor parses a single color letter (W, Y, G, B, R, O).
func ParseColor(s string) (Color, error) {
	if len(s) != 1 {
		return 0, ErrInvalidColor
	}
	switch s[0] {
	case 'W', 'w':
		return White, nil
	case 'Y', 'y':
		return Yellow, nil
	case 'G', 'g':
		return Green, nil
	case 'B', 'b':
		return Blue, nil
	case 'R', 'r':
		return Red, nil
	case 'O', 'o':
		return Orange, nil
	}
	return 0, ErrInvalidColor
}
