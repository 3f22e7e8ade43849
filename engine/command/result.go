package command

import "github.com/nathoo/termfolio/types"

// ResultKind says whether anything is left to run after the history push.
type ResultKind int

const (
	Immediate ResultKind = iota
	DeferredAfterHistoryPush
)

func (k ResultKind) String() string {
	if k == DeferredAfterHistoryPush {
		return "deferred"
	}
	return "immediate"
}

// Result is what resolving one line produced.
type Result struct {
	Kind    ResultKind
	Action  func() // set for DeferredAfterHistoryPush
	Outcome types.OutcomeKind
}

// Done is an Immediate result with the given outcome.
func Done(outcome types.OutcomeKind) Result {
	return Result{Kind: Immediate, Outcome: outcome}
}

// Deferred wraps action for execution after the history push.
func Deferred(action func()) Result {
	return Result{Kind: DeferredAfterHistoryPush, Action: action, Outcome: types.OutcomeOK}
}
