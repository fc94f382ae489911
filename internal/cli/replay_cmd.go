package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [solve_id]",
	Short: "Step through a stored solution",
	Long: `Replay a stored solve move by move, starting from the scrambled cube.

Usage:
  pocketcube replay --last               # Replay the most recent solve
  pocketcube replay <solve_id>           # Replay a specific solve
  pocketcube replay --speed 4            # Play 4 moves per second
  pocketcube replay --step               # Step through moves manually`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replayLast  bool
	replaySpeed float64
	replayStep  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent solve")
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 2.0, "Moves per second")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var id string
	if len(args) > 0 {
		id = args[0]
	}
	solve, err := findSolve(db, id, replayLast)
	if err != nil {
		return err
	}

	stored, err := recorder.Load(db, solve)
	if err != nil {
		return err
	}

	model := newReplayModel(stored, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

// Replay model
type replayModel struct {
	stored    *recorder.Stored
	tracker   *pocketcube.Tracker
	speed     float64
	stepMode  bool
	paused    bool
	solved    bool
	gen       int
	quitting  bool
	debugMode bool
}

func newReplayModel(stored *recorder.Stored, speed float64, stepMode bool) *replayModel {
	m := &replayModel{
		stored:   stored,
		tracker:  pocketcube.NewTracker(stored.Cube()),
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
	m.tracker.SetStateCallback(func(_ pocketcube.Cube, solved bool) {
		m.solved = solved
	})
	m.solved = m.tracker.IsSolved()
	return m
}

// replayStepMsg carries the generation it was scheduled in so ticks from
// before a pause or reset are dropped.
type replayStepMsg struct{ gen int }

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.tracker.Len() >= len(m.stored.Solution) {
		return nil
	}
	gen := m.gen
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayStepMsg{gen: gen}
	})
}

func (m *replayModel) next() {
	if i := m.tracker.Len(); i < len(m.stored.Solution) {
		m.tracker.ApplyMove(m.stored.Solution[i])
	}
}

func (m *replayModel) restart() tea.Cmd {
	m.gen++
	if m.paused {
		return nil
	}
	return m.scheduleNext()
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			if m.paused {
				m.next()
			} else {
				m.paused = true
				m.gen++
			}

		case "b", "left":
			m.tracker.Undo()

		case "p":
			m.paused = !m.paused
			return m, m.restart()

		case "r":
			m.tracker.Reset()
			return m, m.restart()

		case "d":
			m.debugMode = !m.debugMode

		case "+", "=":
			m.speed *= 2
			if m.speed > 32 {
				m.speed = 32
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayStepMsg:
		if !m.paused && msg.gen == m.gen {
			m.next()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder
	solve := m.stored.Solve
	pos := m.tracker.Len()
	total := len(m.stored.Solution)

	b.WriteString(titleStyle.Render("Pocket Cube Replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", pos, total)
	if m.paused {
		progress += " [PAUSED]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2g moves/s)\n", m.speed))
	b.WriteString(fmt.Sprintf("Scramble: %s\n\n", pocketcube.FormatMoves(m.stored.Scramble)))

	b.WriteString(netStyle.Render(strings.TrimRight(m.tracker.CubeString(), "\n")))
	b.WriteString("\n")

	if m.solved {
		b.WriteString(labelStyle.Render("SOLVED!"))
	} else {
		b.WriteString(statusStyle.Render("scrambled"))
	}
	b.WriteString("\n\n")

	// Moves played so far, with the upcoming one highlighted
	var played []string
	for _, mv := range m.tracker.Moves() {
		played = append(played, mv.Notation())
	}
	b.WriteString("Played: ")
	b.WriteString(moveStyle.Render(strings.Join(played, " ")))
	b.WriteString("\n")
	if pos < total {
		nextMove := m.stored.Solution[pos]
		b.WriteString(fmt.Sprintf("Next:   %s  %s  (%s)\n",
			labelStyle.Render(nextMove.Notation()),
			notation.MovePhrase(nextMove),
			segmentName(m.stored.Segments[pos])))
	}

	if m.debugMode {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("DEBUG - Solve:"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  ID:          %s\n", solve.SolveID))
		b.WriteString(fmt.Sprintf("  Segments:    %d scrambled side, %d solved side\n",
			solve.ScrambledDepth, solve.SolvedDepth))
		b.WriteString(fmt.Sprintf("  Rotation:    %d folded moves\n", solve.RotationLen))
		b.WriteString(fmt.Sprintf("  Canonical:   %s\n", solve.CanonicalText))
		b.WriteString(fmt.Sprintf("  Levels:      %d\n", solve.Levels))
		b.WriteString(fmt.Sprintf("  Visited:     %d + %d\n", solve.VisitedScrambled, solve.VisitedSolved))
		b.WriteString(fmt.Sprintf("  Class key:   %#016x\n", m.tracker.Cube().Key()))
	}

	b.WriteString("\n")

	help := "SPACE/n=next  b=back  p=play/pause  r=reset  d=debug  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  b=back  p=play  r=reset  d=debug  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func segmentName(segment string) string {
	switch segment {
	case storage.SegmentScrambled:
		return "from the scrambled side"
	case storage.SegmentSolved:
		return "towards solved"
	default:
		return segment
	}
}
