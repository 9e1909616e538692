package main

import (
	"log/slog"
	"os"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/billing/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/billing/internal/clock"
	"github.com/MrJamesThe3rd/billing/internal/config"
	"github.com/MrJamesThe3rd/billing/internal/customer"
	customerStore "github.com/MrJamesThe3rd/billing/internal/customer/store"
	"github.com/MrJamesThe3rd/billing/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/billing/internal/invoice/store"
	"github.com/MrJamesThe3rd/billing/internal/timezone"
)

type model struct {
	appName         string
	greeting        string
	customerService *customer.Service
	invoiceService  *invoice.Service
	resolver        *timezone.Resolver

	currentView View
	width       int
	height      int

	customersView view.CustomersModel
	invoicesView  view.InvoicesModel
	clockView     view.ClockModel
}

type View int

const (
	ViewMenu      View = 0
	ViewCustomers View = 1
	ViewInvoices  View = 2
	ViewClock     View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	customerSvc := customer.NewService(customerStore.New())
	invoiceSvc := invoice.NewService(invoiceStore.New())
	resolver := timezone.NewResolver(clock.System{})

	return model{
		appName:         cfg.App.Name,
		greeting:        cfg.App.Greeting,
		customerService: customerSvc,
		invoiceService:  invoiceSvc,
		resolver:        resolver,
		currentView:     ViewMenu,
		customersView:   view.NewCustomersModel(customerSvc),
		invoicesView:    view.NewInvoicesModel(invoiceSvc, customerSvc),
		clockView:       view.NewClockModel(resolver),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCustomers
				m.customersView = view.NewCustomersModel(m.customerService)

				return m, tea.Batch(m.customersView.Init(), m.resize())
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService, m.customerService)

				return m, tea.Batch(m.invoicesView.Init(), m.resize())
			case "3":
				m.currentView = ViewClock
				m.clockView = view.NewClockModel(m.resolver)

				return m, m.clockView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCustomers:
		var newModel tea.Model
		newModel, cmd = m.customersView.Update(msg)
		m.customersView = newModel.(view.CustomersModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewClock:
		var newModel tea.Model
		newModel, cmd = m.clockView.Update(msg)
		m.clockView = newModel.(view.ClockModel)
	}

	return m, cmd
}

var footerStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(1)

func (m model) active() view.View {
	switch m.currentView {
	case ViewCustomers:
		return m.customersView
	case ViewInvoices:
		return m.invoicesView
	case ViewClock:
		return m.clockView
	}

	return nil
}

// resize replays the last window size to a freshly built view.
func (m model) resize() tea.Cmd {
	if m.width == 0 {
		return nil
	}

	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}

	return func() tea.Msg { return size }
}

func (m model) View() string {
	if m.currentView == ViewMenu {
		title := lipgloss.NewStyle().Bold(true).Render(m.appName + " TUI")

		return lipgloss.NewStyle().Padding(2).Render(
			title + "\n" +
				lipgloss.NewStyle().Faint(true).Render(m.greeting) + "\n\n" +
				"1. Customers\n" +
				"2. Invoices\n" +
				"3. World Clock\n\n" +
				"q. Quit",
		)
	}

	if active := m.active(); active != nil {
		return active.View() + "\n" + footerStyle.Render(active.Title()+" | "+active.ShortHelp())
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
