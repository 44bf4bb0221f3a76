package skylift

import (
	"net/url"
	"time"
)

// ActionStatus is the lifecycle state of an action.
type ActionStatus string

// Action lifecycle states.
const (
	ActionStatusRunning ActionStatus = "running"
	ActionStatusSuccess ActionStatus = "success"
	ActionStatusError   ActionStatus = "error"
)

// IsTerminal reports whether the action has finished, successfully or not.
func (s ActionStatus) IsTerminal() bool {
	return s == ActionStatusSuccess || s == ActionStatusError
}

// Action represents an asynchronous provider operation such as creating a
// server or attaching a volume. Mutating calls return action references
// immediately; completion is observed by fetching the action until its
// status is terminal.
type Action struct {
	ID        int64            `json:"id"        yaml:"id"        validate:"required"`
	Command   string           `json:"command"   yaml:"command"   validate:"required"`
	Status    ActionStatus     `json:"status"    yaml:"status"    validate:"required,oneof=running success error"`
	Progress  int              `json:"progress"  yaml:"progress"`
	Started   time.Time        `json:"started"   yaml:"started"`
	Finished  *time.Time       `json:"finished"  yaml:"finished"`
	Resources []ActionResource `json:"resources" yaml:"resources"`
	Error     *ActionError     `json:"error"     yaml:"error"`
}

// ActionResource identifies one resource an action operates on.
type ActionResource struct {
	ID   int64  `json:"id"   yaml:"id"   validate:"required"`
	Type string `json:"type" yaml:"type" validate:"required"`
}

// ActionError is the failure detail of an errored action.
type ActionError struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ActionList is the response to listing actions.
type ActionList struct {
	Actions []Action `json:"actions" yaml:"actions" validate:"dive"`
	Meta    Meta     `json:"meta"    yaml:"meta"`
}

// ActionListParams filters and orders action listings.
type ActionListParams struct {
	ListParams

	// ID limits the result to the given action ids.
	ID []int64
	// Status limits the result to actions in the given states.
	Status []ActionStatus
	// Sort orders the result, for example "command" or "started:desc".
	Sort []string
}

// ToValues encodes the parameters, including only fields that are set.
func (p *ActionListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := p.ListParams.ToValues()
	addRepeatedInt64Param(values, "id", p.ID)
	addRepeatedParam(values, "status", p.Status)
	addRepeatedParam(values, "sort", p.Sort)

	return values
}

// PollOptions tunes how Actions().PollUntilDone waits for an action to
// finish. The zero value checks every second, gives up after five minutes,
// and treats an errored action as a failure.
type PollOptions struct {
	// Interval is the pause between consecutive status fetches.
	// Zero means one second.
	Interval time.Duration
	// Timeout bounds the total wall-clock wait. Zero means five minutes.
	Timeout time.Duration
	// IgnoreActionErrors makes the poller hand an errored action back to
	// the caller instead of converting it into an error.
	IgnoreActionErrors bool
}
