package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/predex/internal/ui/style"
)

// View renders the rule list next to the log of the selected rule.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	if m.Viewport.Height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.ruleList(),
		m.logPane(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m Model) ruleList() string {
	var s strings.Builder

	finished := 0
	for _, rule := range m.Rules {
		if rule.Status != StatusPending && rule.Status != StatusRunning {
			finished++
		}
	}
	s.WriteString(titleStyle.Render(fmt.Sprintf("RULES %d/%d", finished, len(m.Rules))) + "\n\n")

	for i, rule := range m.Rules {
		var lineStyle lipgloss.Style
		var icon string

		switch rule.Status {
		case StatusRunning:
			lineStyle, icon = ruleRunningStyle, "●"
		case StatusDone:
			lineStyle, icon = ruleDoneStyle, style.Check
		case StatusCached:
			lineStyle, icon = ruleCachedStyle, style.Tilde
		case StatusError:
			lineStyle, icon = ruleErrorStyle, style.Cross
		default:
			lineStyle, icon = rulePendingStyle, style.Circle
		}

		marker := "  "
		if i == m.SelectedIdx {
			marker = "> "
		}
		s.WriteString(lineStyle.Render(marker+icon+" "+rule.Target) + "\n")
	}

	return listStyle.Render(s.String())
}

//nolint:gocritic // hugeParam ignored
func (m Model) logPane() string {
	header := titleStyle.Render("LOGS (Waiting...)")
	if node := m.Selected(); node != nil {
		title := "LOGS: " + node.Target
		if node.Err != nil {
			title += " (failed)"
		}
		header = titleStyle.Render(title)
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}
