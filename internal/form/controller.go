// Package form holds the create-form submission pipeline shared by the
// category, event and place forms: validate, map, send, report, reset.
package form

import (
	"errors"
	"log"

	"pg360/internal/api"
	"pg360/internal/toast"
)

// Phase is the controller state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Result is the settled outcome of one network call. A nil Err means ok.
type Result struct {
	Err error
}

// Outcome tells the form what to show and whether to reset its draft.
type Outcome struct {
	Toast toast.Toast
	Reset bool
}

// Step performs the network request of a submission.
type Step func() Result

// Controller drives the submit cycle of one form instance.
type Controller struct {
	entity  string
	success string
	phase   Phase
}

// NewController creates a controller. entity names the form in logs;
// success is the toast text shown when the API accepts the payload.
func NewController(entity, success string) *Controller {
	return &Controller{entity: entity, success: success}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Busy reports whether a submission is between trigger and settlement.
func (c *Controller) Busy() bool {
	return c.phase == PhaseValidating || c.phase == PhaseSubmitting
}

// Submit validates the draft and, when it passes, enters Submitting and
// returns the step that performs the request. While busy it returns
// (nil, nil). A failed validation returns the error outcome and never calls
// send.
func (c *Controller) Submit(validate func() error, send func() error) (step Step, out *Outcome) {
	if c.Busy() {
		return nil, nil
	}

	c.phase = PhaseValidating
	if err := validate(); err != nil {
		c.phase = PhaseIdle
		return nil, &Outcome{Toast: toast.Toast{Kind: toast.Error, Text: Describe(err)}}
	}

	c.phase = PhaseSubmitting
	return func() Result {
		return Result{Err: send()}
	}, nil
}

// Settle interprets a finished request. The controller is back to Idle on
// every path.
func (c *Controller) Settle(r Result) Outcome {
	c.phase = PhaseSettled
	defer func() { c.phase = PhaseIdle }()

	if r.Err == nil {
		return Outcome{Toast: toast.Toast{Kind: toast.Success, Text: c.success}, Reset: true}
	}

	logFailure(c.entity, r.Err)
	return Outcome{Toast: toast.Toast{Kind: toast.Error, Text: Describe(r.Err)}}
}

func logFailure(entity string, err error) {
	var serverErr *api.ServerError
	var netErr *api.NetworkError
	switch {
	case errors.As(err, &serverErr):
		log.Printf("erro técnico: create %s: status=%d correlation=%s body=%q",
			entity, serverErr.StatusCode, serverErr.CorrelationID, serverErr.Body)
	case errors.As(err, &netErr):
		log.Printf("erro técnico: create %s: correlation=%s: %v", entity, netErr.CorrelationID, netErr.Err)
	default:
		log.Printf("erro técnico: create %s: %v", entity, err)
	}
}
