package tui

import "time"

type msgPlan struct {
	Targets []string
}

type msgRuleStart struct {
	SpanID    string
	Target    string
	StartTime time.Time
}

type msgRuleLog struct {
	SpanID string
	Data   []byte
}

type msgRuleComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
	Cached  bool
}
