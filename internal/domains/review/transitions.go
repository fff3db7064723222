package review

// Action là editorial action do reviewer thực hiện
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionFlag    Action = "flag"
	ActionLock    Action = "lock"
)

// transition is a target state plus the action kind recorded in history.
type transition struct {
	target        State
	historyAction string
}

// transitions is the whole workflow policy in one place. The graph is
// deliberately permissive: any action may fire from any current state,
// favoring editorial flexibility over strict enforcement. Tightening the
// policy later means keying this table by (current state, action); nothing
// outside this file needs to change.
var transitions = map[Action]transition{
	ActionApprove: {target: StateApproved, historyAction: "state_change"},
	ActionReject:  {target: StateRejected, historyAction: "issue_add"},
	ActionFlag:    {target: StateFlagged, historyAction: "flag"},
	ActionLock:    {target: StateLocked, historyAction: "state_change"},
}

// Resolve returns the new state and the history action kind for an action
// fired from the current state, or ErrUnknownAction.
func Resolve(current State, action Action) (State, string, error) {
	t, ok := transitions[action]
	if !ok {
		return current, "", ErrUnknownAction
	}
	return t.target, t.historyAction, nil
}
