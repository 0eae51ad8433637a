// Package session owns the per-session UI state: which request is in
// flight, which result panel is populated, and the current user-facing
// message. Transitions go through a pure reducer so the gating rules
// are testable without any I/O.
package session

import "fantassist/internal/assistant"

type Status string

const (
	StatusIdle             Status = "idle"
	StatusFetchingGrades   Status = "fetching_grades"
	StatusFetchingAnalysis Status = "fetching_analysis"
	StatusSuccess          Status = "success"
	StatusFailed           Status = "failed"
)

// State is one snapshot of the session. At most one of Grades and
// Analysis is non-nil at any time; starting either request clears both.
type State struct {
	Status   Status              `json:"status"`
	Grades   *assistant.Grades   `json:"grades,omitempty"`
	Analysis *assistant.Analysis `json:"analysis,omitempty"`
	// Message carries validation and failure text for the error banner.
	Message string `json:"message,omitempty"`
}

// Fetching reports whether a provider call is outstanding.
func (s State) Fetching() bool {
	return s.Status == StatusFetchingGrades || s.Status == StatusFetchingAnalysis
}

type Event interface{ isEvent() }

// StartGrades and StartAnalysis begin a request. Both result slots and
// any prior message are cleared. Ignored while a request is in flight.
type StartGrades struct{}
type StartAnalysis struct{}

// GradesFetched and AnalysisReady carry a successful gateway result.
type GradesFetched struct{ Result assistant.Grades }
type AnalysisReady struct{ Result assistant.Analysis }

// RequestFailed ends the in-flight request with a fixed user message.
type RequestFailed struct{ Message string }

// Rejected records a validation message without changing status.
type Rejected struct{ Message string }

func (StartGrades) isEvent()   {}
func (StartAnalysis) isEvent() {}
func (GradesFetched) isEvent() {}
func (AnalysisReady) isEvent() {}
func (RequestFailed) isEvent() {}
func (Rejected) isEvent()      {}

// Reduce is the pure transition function. Events that do not apply in
// the current status leave the state untouched.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case StartGrades:
		if s.Fetching() {
			return s
		}
		return State{Status: StatusFetchingGrades}
	case StartAnalysis:
		if s.Fetching() {
			return s
		}
		return State{Status: StatusFetchingAnalysis}
	case GradesFetched:
		if s.Status != StatusFetchingGrades {
			return s
		}
		res := e.Result
		return State{Status: StatusSuccess, Grades: &res}
	case AnalysisReady:
		if s.Status != StatusFetchingAnalysis {
			return s
		}
		res := e.Result
		return State{Status: StatusSuccess, Analysis: &res}
	case RequestFailed:
		if !s.Fetching() {
			return s
		}
		return State{Status: StatusFailed, Message: e.Message}
	case Rejected:
		if s.Fetching() {
			return s
		}
		s.Message = e.Message
		return s
	default:
		return s
	}
}
