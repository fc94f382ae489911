package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
)

// Message types
type (
	progressMsg  pocketcube.Progress
	solveDoneMsg struct {
		rec *recorder.Record
		err error
	}
	tickMsg time.Time
)

var errWatchAborted = errors.New("search aborted")

// runWatch solves in the background while a TUI shows each level as the
// two frontiers advance.
func runWatch(ctx context.Context, session *recorder.Session, scramble []pocketcube.Move, s recorder.Settings) (*recorder.Record, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newWatchModel(scramble, s.MaxDepth, cancel)
	p := tea.NewProgram(model)

	session.SetProgressCallback(func(pr pocketcube.Progress) {
		p.Send(progressMsg(pr))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		rec, err := session.Run(ctx, scramble, s)
		p.Send(solveDoneMsg{rec: rec, err: err})
	}()

	final, err := p.Run()
	cancel()
	<-done
	if err != nil {
		return nil, fmt.Errorf("watch error: %w", err)
	}

	m := final.(*watchModel)
	if m.err != nil {
		return nil, m.err
	}
	if m.rec == nil {
		return nil, errWatchAborted
	}
	return m.rec, nil
}

type watchModel struct {
	scramble []pocketcube.Move
	maxDepth int
	cancel   context.CancelFunc

	levels  []pocketcube.Progress
	start   time.Time
	elapsed time.Duration

	rec      *recorder.Record
	err      error
	quitting bool
}

func newWatchModel(scramble []pocketcube.Move, maxDepth int, cancel context.CancelFunc) *watchModel {
	return &watchModel{
		scramble: scramble,
		maxDepth: maxDepth,
		cancel:   cancel,
		start:    time.Now(),
	}
}

func (m *watchModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *watchModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}

	case tickMsg:
		if m.rec == nil && m.err == nil {
			m.elapsed = time.Since(m.start)
			return m, m.tickCmd()
		}

	case progressMsg:
		m.levels = append(m.levels, pocketcube.Progress(msg))

	case solveDoneMsg:
		m.rec = msg.rec
		m.err = msg.err
		m.elapsed = time.Since(m.start)
		return m, tea.Quit
	}

	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pocket Cube Search"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Scramble: %s\n", moveStyle.Render(pocketcube.FormatMoves(m.scramble))))
	b.WriteString(fmt.Sprintf("Elapsed:  %s\n\n", formatDuration(m.elapsed)))

	b.WriteString(statusStyle.Render(fmt.Sprintf("%-6s %12s %12s %10s %10s", "Level", "Scrambled", "Solved", "Front S", "Front G")))
	b.WriteString("\n")
	for _, p := range m.levels {
		b.WriteString(fmt.Sprintf("%-6d %12d %12d %10d %10d\n",
			p.Level, p.VisitedScrambled, p.VisitedSolved, p.FrontierScrambled, p.FrontierSolved))
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.rec != nil:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Solved in %d face turns", m.rec.Result.FaceTurns())))
		b.WriteString("\n")
	case m.quitting:
		b.WriteString(errorStyle.Render("Aborting..."))
		b.WriteString("\n")
	default:
		b.WriteString(statusStyle.Render(fmt.Sprintf("Searching (max depth %d per side)...", m.maxDepth)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q=abort"))
		b.WriteString("\n")
	}

	return b.String()
}
