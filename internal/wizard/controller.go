package wizard

import (
	"sync"

	"github.com/princejain-2004/RESUME-EXPERT/internal/completion"
	"github.com/princejain-2004/RESUME-EXPERT/internal/draft"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// Status is a snapshot of a controller.
type Status struct {
	Step       Step                   `json:"step"`
	Progress   int                    `json:"progress"`
	Completion int                    `json:"completion"`
	Errors     types.ValidationResult `json:"errors"`
}

// Controller holds one user's pass through the form: the current step, the
// draft being edited and the errors of the last refused advance. It is safe
// for concurrent use.
type Controller struct {
	mu         sync.Mutex
	step       Step
	draft      types.Draft
	lastErrors types.ValidationResult
}

// NewController starts at the first step with a copy of d.
func NewController(d types.Draft) *Controller {
	return &Controller{
		step:       First,
		draft:      d.Clone(),
		lastErrors: types.ValidationResult{},
	}
}

// ResumeAt starts at step, for a user returning to a partly completed form.
// Out-of-range steps start at the first step.
func ResumeAt(step Step, d types.Draft) *Controller {
	c := NewController(d)
	if step.Valid() {
		c.step = step
	}
	return c
}

// Advance validates the current step and moves forward when it passes.
// A refused advance records its errors; an accepted one clears them.
func (c *Controller) Advance() Transition {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := Advance(c.step, c.draft)
	c.step = t.Step
	c.lastErrors = t.Errors
	return t
}

// Retreat moves back one step. It leaves the recorded errors alone.
func (c *Controller) Retreat() Transition {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := Retreat(c.step)
	c.step = t.Step
	return t
}

// Update applies a draft edit and returns the new draft.
func (c *Controller) Update(action draft.Action) types.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = draft.Apply(c.draft, action)
	return c.draft.Clone()
}

// Replace swaps in a whole draft, e.g. after hydrating from the server.
func (c *Controller) Replace(d types.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d.Clone()
}

// Step returns the current step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Draft returns a copy of the draft.
func (c *Controller) Draft() types.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// LastErrors returns the errors of the last refused advance.
func (c *Controller) LastErrors() types.ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(types.ValidationResult{}, c.lastErrors...)
}

// Status returns the positional progress alongside the content completion.
// The two are independent.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Step:       c.step,
		Progress:   c.step.Progress(),
		Completion: completion.Score(c.draft),
		Errors:     append(types.ValidationResult{}, c.lastErrors...),
	}
}
