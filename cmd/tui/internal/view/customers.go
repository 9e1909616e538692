package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/billing/internal/customer"
)

type customersState int

const (
	customersStateBrowse customersState = iota
	customersStateCreate
	customersStateSaving
)

type CustomersModel struct {
	CommonModel
	svc *customer.Service

	state     customersState
	table     table.Model
	customers []*customer.Customer
	form      *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings live behind a pointer so they survive model copies.
	draft *customerDraft
}

type customerDraft struct {
	name  string
	email string
	desc  string
	age   string
}

func NewCustomersModel(svc *customer.Service) CustomersModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 30},
		{Title: "Age", Width: 5},
		{Title: "Description", Width: 30},
	}

	return CustomersModel{
		svc:     svc,
		table:   newTable(columns, 15),
		loading: true,
	}
}

func (m CustomersModel) Title() string { return "Customers" }

func (m CustomersModel) ShortHelp() string {
	switch m.state {
	case customersStateCreate:
		return "Navigate form | Esc: cancel"
	case customersStateSaving:
		return "Saving..."
	}

	return "Esc: back | n: new customer | r: refresh"
}

func (m CustomersModel) Init() tea.Cmd {
	return m.loadCustomersCmd()
}

func (m CustomersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCustomersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.customers = msg.customers
		m.refreshTable()

		return m, nil

	case customerSavedMsg:
		m.state = customersStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Created customer #%d", msg.customer.ID)

		return m, m.loadCustomersCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(m.resize(msg, 10))

		return m, nil
	}

	switch m.state {
	case customersStateBrowse:
		return m.updateBrowse(msg)
	case customersStateCreate:
		return m.updateCreate(msg)
	case customersStateSaving:
		return m, nil
	}

	return m, nil
}

func (m CustomersModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCustomersCmd()
		case "n":
			return m.enterCreateMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CustomersModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.draft = &customerDraft{}
	m.status = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.draft.name).
				Validate(notBlank("name")),

			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("someone@example.com").
				Value(&m.draft.email).
				Validate(notBlank("email")),

			huh.NewInput().
				Key("description").
				Title("Description (optional)").
				Value(&m.draft.desc),

			huh.NewInput().
				Key("age").
				Title("Age").
				Value(&m.draft.age).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return errors.New("age must be a whole number")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = customersStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m CustomersModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = customersStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = customersStateSaving

	return m, m.saveCmd()
}

func (m CustomersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading customers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Customers: %s", activeStyle(strconv.Itoa(len(m.customers))))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableBox(m.table),
	)

	if m.state != customersStateBrowse && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Customer\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CustomersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.customers))
	for _, c := range m.customers {
		rows = append(rows, table.Row{
			strconv.Itoa(c.ID),
			c.Name,
			c.Email,
			strconv.Itoa(c.Age),
			FormatOptional(c.Description),
		})
	}

	m.table.SetRows(rows)
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// Messages

type loadCustomersMsg struct {
	customers []*customer.Customer
	err       error
}

func (m CustomersModel) loadCustomersCmd() tea.Cmd {
	svc := m.svc

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		customers, err := svc.List(ctx)

		return loadCustomersMsg{customers: customers, err: err}
	}
}

type customerSavedMsg struct {
	customer *customer.Customer
	err      error
}

func (m CustomersModel) saveCmd() tea.Cmd {
	svc := m.svc
	params := customer.CreateParams{
		Name:  strings.TrimSpace(m.draft.name),
		Email: strings.TrimSpace(m.draft.email),
	}

	if desc := strings.TrimSpace(m.draft.desc); desc != "" {
		params.Description = &desc
	}

	// Validated by the form.
	params.Age, _ = strconv.Atoi(strings.TrimSpace(m.draft.age))

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		c, err := svc.Create(ctx, params)

		return customerSavedMsg{customer: c, err: err}
	}
}
