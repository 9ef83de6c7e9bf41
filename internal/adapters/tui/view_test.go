package tui_test

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/predex/internal/adapters/tui"
)

func TestView_Initialization(t *testing.T) {
	m := tui.Model{
		Viewport: viewport.Model{Height: 0},
	}
	assert.Contains(t, m.View(), "Initializing...")
}

func TestView_RuleList(t *testing.T) {
	m := newModel(t)
	now := time.Now()
	m = update(t, m,
		tui.PlanMsg("//a:running", "//a:done", "//a:cached", "//a:failed", "//a:pending"),
		tui.RuleStartMsg("s1", "//a:done", now),
		tui.RuleCompleteMsg("s1", now, nil, false),
		tui.RuleStartMsg("s2", "//a:cached", now),
		tui.RuleCompleteMsg("s2", now, nil, true),
		tui.RuleStartMsg("s3", "//a:failed", now),
		tui.RuleCompleteMsg("s3", now, errors.New("boom"), false),
		tui.RuleStartMsg("s4", "//a:running", now),
	)

	output := m.View()

	assert.Contains(t, output, "RULES 3/5")
	assert.Contains(t, output, "> ● //a:running")
	assert.Contains(t, output, "✓ //a:done")
	assert.Contains(t, output, "~ //a:cached")
	assert.Contains(t, output, "✗ //a:failed")
	assert.Contains(t, output, "○ //a:pending")
	assert.Contains(t, output, "LOGS: //a:running")
}

func TestView_FailedRuleHeader(t *testing.T) {
	m := newModel(t)
	now := time.Now()
	m = update(t, m,
		tui.RuleStartMsg("s1", "//lib:util", now),
		tui.RuleLogMsg("s1", "error: bad class\n"),
		tui.RuleCompleteMsg("s1", now, errors.New("exit status 1"), false),
	)

	output := m.View()
	assert.Contains(t, output, "LOGS: //lib:util (failed)")
	assert.Contains(t, output, "error: bad class")
}
