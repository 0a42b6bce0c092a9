// Package auth holds the flow controllers for login, registration and
// password reset. Each flow is a small state machine: Idle -> Submitting ->
// Succeeded or Failed. A flow never lets a server error escape raw; every
// failure is converted to a message fit for the screen.
package auth

import "errors"

type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrInFlight is returned when Submit is called while a submission is
// already running. Flows are non-reentrant; retry is allowed only once the
// previous attempt has settled.
var ErrInFlight = errors.New("submission already in progress")

// flow is the shared submission guard embedded by every controller.
type flow struct {
	state State
}

func (f *flow) State() State {
	return f.state
}

// begin moves Idle/Failed (or a settled Succeeded) to Submitting.
func (f *flow) begin() error {
	if f.state == Submitting {
		return ErrInFlight
	}
	f.state = Submitting
	return nil
}

func (f *flow) fail() {
	f.state = Failed
}

func (f *flow) succeed() {
	f.state = Succeeded
}

// ValidationError is a client-side rejection; it never reaches the network.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErr(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// FlowError carries the user-displayable outcome of a failed submission.
type FlowError struct {
	Message string
	Cause   error
}

func (e *FlowError) Error() string {
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.Cause
}

func flowErr(msg string, cause error) *FlowError {
	return &FlowError{Message: msg, Cause: cause}
}
