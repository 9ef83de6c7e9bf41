package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func PlanMsg(targets ...string) tea.Msg {
	return msgPlan{Targets: targets}
}

func RuleStartMsg(spanID, target string, startTime time.Time) tea.Msg {
	return msgRuleStart{SpanID: spanID, Target: target, StartTime: startTime}
}

func RuleLogMsg(spanID, data string) tea.Msg {
	return msgRuleLog{SpanID: spanID, Data: []byte(data)}
}

func RuleCompleteMsg(spanID string, endTime time.Time, err error, cached bool) tea.Msg {
	return msgRuleComplete{SpanID: spanID, EndTime: endTime, Err: err, Cached: cached}
}
