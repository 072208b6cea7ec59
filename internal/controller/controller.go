// Package controller drives the submission state machine. It owns the
// single mutable submission state, validates requests before they reach
// the network, and turns outcomes into render plans or classified
// messages. Presentation surfaces observe transitions; they never
// reach into the machine.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/faults"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/render"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/submission"
)

// Phase is the controller's position in the submission lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Busy reports whether a submission attempt currently owns the machine.
func (p Phase) Busy() bool {
	return p == PhaseValidating || p == PhaseSubmitting
}

// Snapshot is an immutable view of the machine for presentation. At
// most one of Plan or Notice is meaningful: Plan is set in Succeeded,
// Notice carries the validation or failure message otherwise.
type Snapshot struct {
	Phase  Phase
	Notice string
	Plan   *render.Plan
	Result *extractor.Result
}

// Transition describes one phase change and the state that followed
// it. Request is the submission that drove the attempt.
type Transition struct {
	From     Phase
	To       Phase
	Request  submission.Request
	Snapshot Snapshot
}

// Controller is the submission state machine. A zero Controller is not
// usable; construct with New.
type Controller struct {
	service extractor.System
	logger  *slog.Logger

	mu        sync.Mutex
	phase     Phase
	notice    string
	plan      *render.Plan
	result    *extractor.Result
	preflight bool
	observers []func(Transition)
}

// New creates a Controller in the Idle phase.
func New(service extractor.System, logger *slog.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger.With("system", "controller"),
		phase:   PhaseIdle,
	}
}

// SetPreflight toggles the local document readability check performed
// after validation and before submission.
func (c *Controller) SetPreflight(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.preflight = enabled
}

// Observe registers fn to run after every phase transition. Observers
// run synchronously on the submitting goroutine, in registration
// order, outside the controller lock.
func (c *Controller) Observe(fn func(Transition)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, fn)
}

// Snapshot returns the current state of the machine.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

// Submit runs one complete submission attempt: validation, the service
// call, and outcome handling. It blocks until the attempt settles and
// returns the resulting snapshot. A second Submit while one is in
// flight changes nothing and returns ErrInFlight. Validation failures
// are not errors: the machine returns to Idle with the reason in
// Notice.
func (c *Controller) Submit(ctx context.Context, req submission.Request) (Snapshot, error) {
	c.mu.Lock()

	if c.phase.Busy() {
		c.mu.Unlock()
		return Snapshot{}, ErrInFlight
	}

	// Validating preserves whatever was on display. Once the guard
	// above has seen it, no other attempt can enter until the machine
	// settles.
	t := c.transition(req, PhaseValidating, c.notice, c.plan, c.result)
	c.mu.Unlock()
	c.notify(t)

	if outcome := submission.Validate(req); outcome.Failed() {
		return c.settle(req, PhaseIdle, outcome.Reason, nil, nil), nil
	}

	if c.preflightEnabled() {
		if _, err := submission.Preflight(req.File); err != nil {
			return c.settle(req, PhaseIdle, err.Error(), nil, nil), nil
		}
	}

	// Entering Submitting clears any previous result or notice right
	// away so stale output never lingers while the request runs.
	c.mu.Lock()
	t = c.transition(req, PhaseSubmitting, "", nil, nil)
	c.mu.Unlock()
	c.notify(t)

	result, err := c.service.Extract(ctx, req)

	if err != nil {
		failure, ok := extractor.AsFailure(err)
		if !ok {
			failure = &extractor.Failure{Detail: err.Error()}
		}

		return c.settle(req, PhaseFailed, faults.Classify(failure), nil, nil), nil
	}

	plan := render.Build(result)

	return c.settle(req, PhaseSucceeded, "", &plan, result), nil
}

// settle performs the final transition of an attempt and notifies.
func (c *Controller) settle(req submission.Request, to Phase, notice string, plan *render.Plan, result *extractor.Result) Snapshot {
	c.mu.Lock()
	t := c.transition(req, to, notice, plan, result)
	c.mu.Unlock()

	c.notify(t)

	return t.Snapshot
}

// transition moves the machine to a new phase. Callers must hold mu
// and pass the returned Transition to notify after releasing it.
func (c *Controller) transition(req submission.Request, to Phase, notice string, plan *render.Plan, result *extractor.Result) Transition {
	from := c.phase

	c.phase = to
	c.notice = notice
	c.plan = plan
	c.result = result

	c.logger.Info(
		"transition",
		"from", from.String(),
		"to", to.String(),
		"notice", notice,
	)

	return Transition{From: from, To: to, Request: req, Snapshot: c.snapshot()}
}

// notify runs observers outside the lock so they may query the
// controller freely.
func (c *Controller) notify(t Transition) {
	c.mu.Lock()
	observers := make([]func(Transition), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(t)
	}
}

func (c *Controller) preflightEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.preflight
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Phase:  c.phase,
		Notice: c.notice,
		Plan:   c.plan,
		Result: c.result,
	}
}
