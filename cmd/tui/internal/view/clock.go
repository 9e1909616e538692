package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/billing/internal/timezone"
)

const clockInterval = time.Second

type ClockModel struct {
	CommonModel
	resolver *timezone.Resolver

	table     table.Model
	use12Hour bool
	err       error
}

func NewClockModel(resolver *timezone.Resolver) ClockModel {
	columns := []table.Column{
		{Title: "Code", Width: 6},
		{Title: "Timezone", Width: 34},
		{Title: "Time", Width: 10},
	}

	m := ClockModel{
		resolver: resolver,
		table:    newTable(columns, len(resolver.Codes())+1),
	}
	m.refresh()

	return m
}

func (m ClockModel) Title() string { return "World Clock" }

func (m ClockModel) ShortHelp() string {
	return "Esc: back | t: toggle 12/24h"
}

type clockTickMsg time.Time

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m ClockModel) Init() tea.Cmd {
	return clockTick()
}

func (m ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.refresh()
		return m, clockTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "t":
			m.use12Hour = !m.use12Hour
			m.refresh()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ClockModel) View() string {
	format := "24h"
	if m.use12Hour {
		format = "12h"
	}

	header := fmt.Sprintf("Format: [t] %s", activeStyle(format))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableBox(m.table),
	)

	if m.err != nil {
		content += "\n" + errorStyle(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ClockModel) refresh() {
	m.err = nil

	codes := m.resolver.Codes()
	rows := make([]table.Row, 0, len(codes))

	for _, code := range codes {
		res, err := m.resolver.Resolve(code, m.use12Hour)
		if err != nil {
			m.err = err
			continue
		}

		rows = append(rows, table.Row{res.ISOCode, res.Timezone, res.Time})
	}

	m.table.SetRows(rows)
}
