package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2).
			MarginRight(1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C6FF0"))

	cardValueStyle = lipgloss.NewStyle().
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C6FF0")).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("💓 pulse — customer lifecycle dashboard"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("load failed: " + m.err.Error()))
		b.WriteString("\n")
	}
	if !m.loaded {
		b.WriteString("Loading first classification pass...\n")
		return b.String()
	}

	b.WriteString(m.statCards())
	b.WriteString("\n\n")

	if m.focus == focusCustomers {
		b.WriteString(cardTitleStyle.Render("Passive customers (most dormant first)"))
		b.WriteString("\n")
		b.WriteString(m.customers.View())
	} else {
		b.WriteString(cardTitleStyle.Render("Passive leads (most dormant first)"))
		b.WriteString("\n")
		b.WriteString(m.leads.View())
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"as of %s  •  r refresh  •  tab customers/leads  •  q quit",
		m.view.Now.Format("15:04:05"),
	)))

	return b.String()
}

func (m Model) statCards() string {
	stats := m.view.Stats
	leads := m.view.LeadSummary

	cards := []string{
		card("Customers", fmt.Sprintf("%d", stats.Total)),
		card("Active", fmt.Sprintf("%d", stats.Active)),
		card("Favorite", fmt.Sprintf("%d (%.0f%%)", stats.Favorite, m.view.FavoritePercentage())),
		card("Passive", fmt.Sprintf("%d (%.0f%%)", stats.Passive, m.view.PassivePercentage())),
		card("New", fmt.Sprintf("%d", stats.New)),
		card("Leads at risk", fmt.Sprintf("%d", leads.RiskOfPassive)),
		card("Recently passive", fmt.Sprintf("%d", leads.RecentlyPassive)),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func card(title, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	))
}
