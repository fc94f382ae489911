package pocketcube

// Tracker wraps a Cube, records applied moves and reports when the cube
// becomes solved.
type Tracker struct {
	start        Cube
	cube         Cube
	history      []Move
	wasSolved    bool
	stateChanged func(c Cube, solved bool)
}

// NewTracker creates a tracker starting from the given cube.
func NewTracker(start Cube) *Tracker {
	return &Tracker{
		start:     start,
		cube:      start,
		wasSolved: start.IsSolved(),
	}
}

// SetStateCallback sets a callback that fires when the cube enters or leaves
// the solved state.
func (t *Tracker) SetStateCallback(cb func(c Cube, solved bool)) {
	t.stateChanged = cb
}

// Reset returns the tracker to its starting cube.
func (t *Tracker) Reset() {
	t.cube = t.start
	t.history = t.history[:0]
	t.wasSolved = t.start.IsSolved()
}

// ApplyMove applies a move and checks for a solved-state transition.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.MakeMove(m)
	t.history = append(t.history, m)
	t.checkTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the most recent move. It reports false when there is nothing
// to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.MakeMove(last.Opposite())
	t.checkTransition()
	return true
}

func (t *Tracker) checkTransition() {
	solved := t.cube.IsSolved()
	if solved == t.wasSolved {
		return
	}
	t.wasSolved = solved
	if t.stateChanged != nil {
		t.stateChanged(t.cube, solved)
	}
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.wasSolved
}

// Cube returns the current cube.
func (t *Tracker) Cube() Cube {
	return t.cube
}

// Moves returns the moves applied since the last reset.
func (t *Tracker) Moves() []Move {
	return append([]Move(nil), t.history...)
}

// Len returns the number of moves applied since the last reset.
func (t *Tracker) Len() int {
	return len(t.history)
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
