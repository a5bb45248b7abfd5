package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kociemba/twophase"
)

// Run drives the live-progress TUI for a single solve and returns the
// best solution found, if any.
func Run(tables *twophase.Tables, cube *twophase.Cube, maxDepth int) (twophase.Solution, bool, error) {
	m := New(tables, cube, maxDepth)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return twophase.Solution{}, false, err
	}

	final := finalModel.(*Model)
	sol, found := final.Best()
	return sol, found, final.err
}
