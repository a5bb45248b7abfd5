// Package tui implements a live progress view for a solver run, built
// on bubbletea and lipgloss in the same channel-fed-Cmd shape the
// teacher uses for its Bluetooth message stream.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kociemba/twophase"
	"github.com/kociemba/twophase/internal/notation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	lengthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type solutionMsg twophase.Solution
type doneMsg struct{ err error }
type tickMsg time.Time

// Model drives a single Solve call, streaming each improving solution
// into the view as it arrives.
type Model struct {
	tables   *twophase.Tables
	cube     *twophase.Cube
	maxDepth int

	solutions chan twophase.Solution
	done      chan error

	best      twophase.Solution
	found     bool
	err       error
	finished  bool
	startTime time.Time
	quitting  bool

	cancel context.CancelFunc
}

// New returns a Model ready to solve cube against tables, up to
// maxDepth moves.
func New(tables *twophase.Tables, cube *twophase.Cube, maxDepth int) *Model {
	return &Model{
		tables:    tables,
		cube:      cube,
		maxDepth:  maxDepth,
		solutions: make(chan twophase.Solution, 16),
		done:      make(chan error, 1),
	}
}

func (m *Model) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.startTime = time.Now()

	go func() {
		err := twophase.Solve(ctx, m.tables, m.cube, func(s twophase.Solution) {
			m.solutions <- s
		}, twophase.WithMaxDepth(m.maxDepth))
		m.done <- err
	}()

	return tea.Batch(m.listenForSolutions(), m.listenForDone(), m.tickCmd())
}

func (m *Model) listenForSolutions() tea.Cmd {
	return func() tea.Msg {
		return solutionMsg(<-m.solutions)
	}
}

func (m *Model) listenForDone() tea.Cmd {
	return func() tea.Msg {
		return doneMsg{err: <-m.done}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Best returns the best solution found once the model has finished.
func (m *Model) Best() (twophase.Solution, bool) {
	return m.best, m.found
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case solutionMsg:
		m.best = twophase.Solution(msg)
		m.found = true
		return m, m.listenForSolutions()
	case doneMsg:
		m.finished = true
		m.err = msg.err
		if m.err == twophase.ErrNoSolutionFound && m.found {
			m.err = nil
		}
		return m, tea.Quit
	case tickMsg:
		if m.finished {
			return m, nil
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model) View() string {
	title := titleStyle.Render("kociemba solve")
	elapsed := time.Since(m.startTime).Round(100 * time.Millisecond)

	var body string
	switch {
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	case m.found:
		body = fmt.Sprintf("%s\n%s",
			lengthStyle.Render(fmt.Sprintf("%d moves", m.best.Len())),
			moveStyle.Render(notation.Sequence(m.best.Moves)),
		)
	default:
		body = statusStyle.Render("searching...")
	}

	status := statusStyle.Render(fmt.Sprintf("elapsed %s", elapsed))
	help := helpStyle.Render("q: quit")

	if m.finished {
		help = helpStyle.Render("search complete")
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s\n", title, body, status, help)
}
