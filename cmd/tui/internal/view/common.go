package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

const minBodyHeight = 5

// CommonModel carries the terminal size shared by every screen.
type CommonModel struct {
	Width  int
	Height int
}

// resize records the window size and returns the rows left for a screen's
// body once chrome rows are taken.
func (c *CommonModel) resize(msg tea.WindowSizeMsg, chrome int) int {
	c.Width, c.Height = msg.Width, msg.Height

	return max(msg.Height-chrome, minBodyHeight)
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
