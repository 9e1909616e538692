package view

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/billing/internal/customer"
	"github.com/MrJamesThe3rd/billing/internal/invoice"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStatePickCustomer
	invoicesStateAddTransaction
	invoicesStateSaving
)

// customerItem wraps a customer to implement list.Item.
type customerItem struct {
	c *customer.Customer
}

func (i customerItem) Title() string {
	return fmt.Sprintf("#%d  %s", i.c.ID, i.c.Name)
}

func (i customerItem) Description() string { return i.c.Email }

func (i customerItem) FilterValue() string { return i.c.Name }

type InvoicesModel struct {
	CommonModel
	invoiceSvc  *invoice.Service
	customerSvc *customer.Service

	state    invoicesState
	table    table.Model
	invoices []*invoice.Invoice
	picker   list.Model
	form     *huh.Form
	spinner  spinner.Model

	loading bool
	err     error
	status  string

	// Invoice under construction
	selected *customer.Customer
	pending  []invoice.Transaction
	draft    *transactionDraft
}

type transactionDraft struct {
	desc    string
	amount  string
	another bool
}

func NewInvoicesModel(invoiceSvc *invoice.Service, customerSvc *customer.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Customer", Width: 24},
		{Title: "Email", Width: 30},
		{Title: "Items", Width: 6},
		{Title: "Total", Width: 14},
	}

	l := list.New([]list.Item{}, customerItemDelegate{}, 60, 15)
	l.Title = "Select Customer"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return InvoicesModel{
		invoiceSvc:  invoiceSvc,
		customerSvc: customerSvc,
		table:       newTable(columns, 15),
		picker:      l,
		spinner:     s,
		loading:     true,
	}
}

func (m InvoicesModel) Title() string { return "Invoices" }

func (m InvoicesModel) ShortHelp() string {
	switch m.state {
	case invoicesStatePickCustomer:
		return "Esc: cancel | Enter: select | /: filter"
	case invoicesStateAddTransaction:
		return "Navigate form | Esc: cancel"
	case invoicesStateSaving:
		return "Saving..."
	}

	return "Esc: back | n: new invoice | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadInvoicesCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.invoices = msg.invoices
		m.refreshTable()

		return m, nil

	case pickCustomersMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading customers: %v", msg.err)
			return m, nil
		}

		if len(msg.customers) == 0 {
			m.status = "Create a customer first."
			return m, nil
		}

		items := make([]list.Item, len(msg.customers))
		for i, c := range msg.customers {
			items[i] = customerItem{c: c}
		}

		m.picker.SetItems(items)
		m.picker.ResetSelected()
		m.state = invoicesStatePickCustomer
		m.table.Blur()

		return m, nil

	case invoiceSavedMsg:
		m.resetDraft()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Created invoice #%d, total %s", msg.invoice.ID, FormatAmount(msg.invoice.Total()))

		return m, m.loadInvoicesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(m.resize(msg, 10))
		m.picker.SetSize(msg.Width-4, max(msg.Height-6, minBodyHeight))

		return m, nil
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStatePickCustomer:
		return m.updatePick(msg)
	case invoicesStateAddTransaction:
		return m.updateAddTransaction(msg)
	case invoicesStateSaving:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadInvoicesCmd()
		case "n":
			m.status = ""
			return m, m.loadCustomersCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.picker.FilterState() != list.Filtering {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.resetDraft()
			return m, nil
		case tea.KeyEnter:
			item, ok := m.picker.SelectedItem().(customerItem)
			if !ok {
				return m, nil
			}

			m.selected = item.c
			m.pending = nil

			return m.enterTransactionForm()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m InvoicesModel) enterTransactionForm() (tea.Model, tea.Cmd) {
	m.draft = &transactionDraft{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.draft.desc).
				Validate(notBlank("description")),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Description("Negative amounts record a refund").
				Value(&m.draft.amount).
				Validate(func(s string) error {
					if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
						return errors.New("amount must be a whole number")
					}
					return nil
				}),

			huh.NewConfirm().
				Key("another").
				Title("Add another transaction?").
				Affirmative("Yes").
				Negative("No, save").
				Value(&m.draft.another),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = invoicesStateAddTransaction

	return m, m.form.Init()
}

func (m InvoicesModel) updateAddTransaction(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.resetDraft()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// Validated by the form.
	amount, _ := strconv.ParseInt(strings.TrimSpace(m.draft.amount), 10, 64)

	m.pending = append(m.pending, invoice.Transaction{
		ID:          len(m.pending) + 1,
		Amount:      amount,
		Description: strings.TrimSpace(m.draft.desc),
	})

	if m.draft.another {
		return m.enterTransactionForm()
	}

	m.state = invoicesStateSaving

	return m, tea.Batch(m.spinner.Tick, m.saveCmd())
}

func (m *InvoicesModel) resetDraft() {
	m.state = invoicesStateBrowse
	m.form = nil
	m.draft = nil
	m.selected = nil
	m.pending = nil
	m.table.Focus()
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	switch m.state {
	case invoicesStatePickCustomer:
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())

	case invoicesStateAddTransaction:
		return lipgloss.NewStyle().Padding(1).Render(
			m.draftView() + "\n" + m.form.View(),
		)

	case invoicesStateSaving:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Saving invoice for %s...", m.spinner.View(), m.selected.Name),
		)
	}

	var grand int64
	for _, inv := range m.invoices {
		grand += inv.Total()
	}

	header := fmt.Sprintf(
		"Invoices: %s | Grand total: %s",
		activeStyle(strconv.Itoa(len(m.invoices))),
		activeStyle(FormatAmount(grand)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableBox(m.table),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m InvoicesModel) draftView() string {
	if m.selected == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Customer: %s <%s>\n", m.selected.Name, m.selected.Email)

	for _, tx := range m.pending {
		fmt.Fprintf(&b, "  %d. %s  %s\n", tx.ID, FormatAmount(tx.Amount), tx.Description)
	}

	if total, err := invoice.Sum(m.pending); err != nil {
		b.WriteString("Running total: " + errorStyle(err.Error()))
	} else {
		fmt.Fprintf(&b, "Running total: %s", FormatAmount(total))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(b.String())
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			strconv.Itoa(inv.ID),
			inv.Customer.Name,
			inv.Customer.Email,
			strconv.Itoa(len(inv.Transactions)),
			FormatAmount(inv.Total()),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

func (m InvoicesModel) loadInvoicesCmd() tea.Cmd {
	svc := m.invoiceSvc

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		invoices, err := svc.List(ctx)

		return loadInvoicesMsg{invoices: invoices, err: err}
	}
}

type pickCustomersMsg struct {
	customers []*customer.Customer
	err       error
}

func (m InvoicesModel) loadCustomersCmd() tea.Cmd {
	svc := m.customerSvc

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		customers, err := svc.List(ctx)

		return pickCustomersMsg{customers: customers, err: err}
	}
}

type invoiceSavedMsg struct {
	invoice *invoice.Invoice
	err     error
}

func (m InvoicesModel) saveCmd() tea.Cmd {
	svc := m.invoiceSvc
	params := invoice.CreateParams{
		Customer:     *m.selected,
		Transactions: m.pending,
	}

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		inv, err := svc.Create(ctx, params)

		return invoiceSavedMsg{invoice: inv, err: err}
	}
}

// customerItemDelegate renders customers in the picker.
type customerItemDelegate struct{}

func (d customerItemDelegate) Height() int                             { return 2 }
func (d customerItemDelegate) Spacing() int                            { return 0 }
func (d customerItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d customerItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(customerItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
