// Package tui provides an interactive terminal view of a running build.
package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/predex/internal/ui/output"
)

const (
	ruleListWidthRatio = 0.3
	logPaneBorderWidth = 4
	headerHeight       = 2
)

// RuleStatus represents the display state of a rule.
type RuleStatus string

const (
	// StatusPending indicates the rule is waiting to start.
	StatusPending RuleStatus = "Pending"
	// StatusRunning indicates the rule is executing.
	StatusRunning RuleStatus = "Running"
	// StatusDone indicates the rule completed successfully.
	StatusDone RuleStatus = "Done"
	// StatusCached indicates the rule was up to date.
	StatusCached RuleStatus = "Cached"
	// StatusError indicates the rule failed.
	StatusError RuleStatus = "Error"
)

// RuleNode is a single rule in the list.
type RuleNode struct {
	Target    string
	Status    RuleStatus
	Logs      bytes.Buffer
	StartTime time.Time
	Duration  time.Duration
	Err       error
}

// Model represents the TUI state.
type Model struct {
	Rules   []*RuleNode
	RuleMap map[string]*RuleNode
	SpanMap map[string]*RuleNode

	Viewport    viewport.Model
	SelectedIdx int
	// FollowMode moves the selection to whichever rule started last.
	FollowMode bool
	AutoScroll bool
}

// NewModel creates a model that renders with the color profile of w.
func NewModel(w io.Writer) Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	return Model{
		Rules:      make([]*RuleNode, 0),
		RuleMap:    make(map[string]*RuleNode),
		SpanMap:    make(map[string]*RuleNode),
		Viewport:   viewport.New(0, 0),
		FollowMode: true,
		AutoScroll: true,
	}
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.refreshViewport()
			}
		case "down", "j":
			if m.SelectedIdx < len(m.Rules)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.refreshViewport()
			}
		case "f":
			m.FollowMode = true
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * ruleListWidthRatio)
		m.Viewport.Width = max(msg.Width-listWidth-logPaneBorderWidth, 0)
		m.Viewport.Height = max(msg.Height-headerHeight, 0)
		m.refreshViewport()

	case msgPlan:
		m.Rules = make([]*RuleNode, len(msg.Targets))
		m.RuleMap = make(map[string]*RuleNode, len(msg.Targets))
		m.SpanMap = make(map[string]*RuleNode)
		for i, target := range msg.Targets {
			m.Rules[i] = &RuleNode{Target: target, Status: StatusPending}
			m.RuleMap[target] = m.Rules[i]
		}
		m.SelectedIdx = 0

	case msgRuleStart:
		node, ok := m.RuleMap[msg.Target]
		if !ok {
			break
		}
		node.Status = StatusRunning
		node.StartTime = msg.StartTime
		m.SpanMap[msg.SpanID] = node
		if m.FollowMode {
			m.SelectedIdx = m.indexOf(node)
			m.refreshViewport()
		}

	case msgRuleLog:
		node, ok := m.SpanMap[msg.SpanID]
		if !ok {
			break
		}
		node.Logs.Write(msg.Data)
		if node == m.Selected() {
			m.refreshViewport()
		}

	case msgRuleComplete:
		node, ok := m.SpanMap[msg.SpanID]
		if !ok {
			break
		}
		node.Duration = msg.EndTime.Sub(node.StartTime)
		node.Err = msg.Err
		switch {
		case msg.Err != nil:
			node.Status = StatusError
		case msg.Cached:
			node.Status = StatusCached
		default:
			node.Status = StatusDone
		}
	}

	return m, nil
}

// Selected returns the highlighted rule, or nil before the plan arrives.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Selected() *RuleNode {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Rules) {
		return nil
	}
	return m.Rules[m.SelectedIdx]
}

func (m *Model) indexOf(node *RuleNode) int {
	for i, n := range m.Rules {
		if n == node {
			return i
		}
	}
	return m.SelectedIdx
}

func (m *Model) refreshViewport() {
	node := m.Selected()
	if node == nil {
		m.Viewport.SetContent("")
		return
	}
	m.Viewport.SetContent(strings.ReplaceAll(node.Logs.String(), "\r\n", "\n"))
	if m.AutoScroll {
		m.Viewport.GotoBottom()
	}
}
