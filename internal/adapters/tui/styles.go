package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/predex/internal/ui/style"
)

var (
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	rulePendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	ruleRunningStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	ruleDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	ruleErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	ruleCachedStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(lipgloss.Color("#FFFFFF"))
)
