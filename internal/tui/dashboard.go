// Package tui implements the live classification dashboard.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyonic/pulse/internal/model"
	"github.com/halcyonic/pulse/internal/report"
	"github.com/halcyonic/pulse/internal/tui/viewmodel"
)

// RefreshInterval is how often the dashboard recomputes a classification
// pass from storage.
const RefreshInterval = 30 * time.Second

// DataSource supplies the collections a classification pass runs over.
type DataSource interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	ListLeads(ctx context.Context) ([]model.Lead, error)
}

// focus selects which detail table is shown.
type focus int

const (
	focusCustomers focus = iota
	focusLeads
)

type tickMsg time.Time

type passLoadedMsg struct {
	err  error
	view viewmodel.DashboardView
}

// KeyMap defines the dashboard keyboard shortcuts.
type KeyMap struct {
	Refresh key.Binding
	Toggle  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "customers/leads"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	source    DataSource
	generator *report.Generator
	keys      KeyMap
	view      viewmodel.DashboardView
	customers table.Model
	leads     table.Model
	focus     focus
	width     int
	loaded    bool
	err       error
}

// NewModel creates a dashboard over the given data source and report
// generator.
func NewModel(source DataSource, generator *report.Generator) Model {
	customers := table.New(
		table.WithColumns([]table.Column{
			{Title: "Company", Width: 28},
			{Title: "Dormant", Width: 10},
			{Title: "Invoices", Width: 8},
			{Title: "Last Invoice", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	leads := table.New(
		table.WithColumns([]table.Column{
			{Title: "Lead", Width: 24},
			{Title: "Company", Width: 20},
			{Title: "Inactive", Width: 10},
			{Title: "Value", Width: 10},
		}),
		table.WithHeight(10),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#333")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FFF")).
		Background(lipgloss.Color("#7C6FF0"))
	customers.SetStyles(styles)
	leads.SetStyles(styles)

	return Model{
		source:    source,
		generator: generator,
		keys:      DefaultKeyMap(),
		customers: customers,
		leads:     leads,
		width:     100,
	}
}

// Init starts the first classification pass and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPass(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadPass reads the collections and runs one classification pass with a
// single now so every figure on screen is mutually consistent.
func (m Model) loadPass() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		customers, err := m.source.ListCustomers(ctx)
		if err != nil {
			return passLoadedMsg{err: err}
		}
		invoices, err := m.source.ListInvoices(ctx)
		if err != nil {
			return passLoadedMsg{err: err}
		}
		leads, err := m.source.ListLeads(ctx)
		if err != nil {
			return passLoadedMsg{err: err}
		}

		now := time.Now()
		return passLoadedMsg{view: viewmodel.DashboardView{
			Now:              now,
			Stats:            m.generator.Statistics(customers, invoices, now),
			LeadSummary:      m.generator.Summary(leads, now),
			PassiveCustomers: m.generator.PassiveCustomers(customers, invoices, now),
			PassiveLeads:     m.generator.PassiveLeads(leads, now),
		}}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadPass()
		case key.Matches(msg, m.keys.Toggle):
			if m.focus == focusCustomers {
				m.focus = focusLeads
			} else {
				m.focus = focusCustomers
			}
			m.customers.Blur()
			m.leads.Blur()
			if m.focus == focusCustomers {
				m.customers.Focus()
			} else {
				m.leads.Focus()
			}
			return m, nil
		}

	case tickMsg:
		return m, tea.Batch(m.loadPass(), tick())

	case passLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.loaded = true
		m.view = msg.view
		m.customers.SetRows(customerRows(msg.view.PassiveCustomers))
		m.leads.SetRows(leadRows(msg.view.PassiveLeads))
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusCustomers {
		m.customers, cmd = m.customers.Update(msg)
	} else {
		m.leads, cmd = m.leads.Update(msg)
	}
	return m, cmd
}

func customerRows(passive []report.CustomerStatus) []table.Row {
	rows := make([]table.Row, 0, len(passive))
	for _, cs := range passive {
		rows = append(rows, table.Row{
			cs.Customer.CompanyName,
			viewmodel.FormatDormancy(cs.Status.MonthsSinceLastInvoice),
			fmt.Sprintf("%d", cs.Status.InvoiceCount),
			cs.Status.LastInvoiceDate.Format("2006-01-02"),
		})
	}
	return rows
}

func leadRows(passive []report.LeadStatus) []table.Row {
	rows := make([]table.Row, 0, len(passive))
	for _, ls := range passive {
		rows = append(rows, table.Row{
			ls.Lead.Name,
			ls.Lead.Company,
			viewmodel.FormatDays(ls.Status.DaysSinceActivity),
			fmt.Sprintf("%.0f", ls.Lead.Value),
		})
	}
	return rows
}
