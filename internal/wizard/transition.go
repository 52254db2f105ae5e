package wizard

import "github.com/princejain-2004/RESUME-EXPERT/internal/types"

// Signal tells the presentation layer what to do after a navigation attempt
// that did not simply change the step.
type Signal string

// Navigation signals
const (
	SignalNone            Signal = "none"
	SignalReadyForPreview Signal = "ready_for_preview"
	SignalExitWizard      Signal = "exit_wizard"
)

// Transition is the outcome of one navigation attempt.
type Transition struct {
	Step     Step                   `json:"step"`
	Progress int                    `json:"progress"`
	Errors   types.ValidationResult `json:"errors"`
	Signal   Signal                 `json:"signal"`
}

// Accepted reports whether validation let the attempt through. An accepted
// attempt may still leave the step unchanged when it carries a signal.
func (t Transition) Accepted() bool {
	return t.Errors.OK()
}

// Moved reports whether the attempt changed the step.
func (t Transition) Moved() bool {
	return t.Accepted() && t.Signal == SignalNone
}

func transition(step Step, errs types.ValidationResult, sig Signal) Transition {
	if errs == nil {
		errs = types.ValidationResult{}
	}
	return Transition{Step: step, Progress: step.Progress(), Errors: errs, Signal: sig}
}

// Advance validates step against d. On failure the step is unchanged and the
// errors are returned. On success it moves to the next step, or signals
// SignalReadyForPreview from the last step. A step outside the table is
// returned unchanged with no signal.
func Advance(step Step, d types.Draft) Transition {
	if !step.Valid() {
		return Transition{Step: step, Errors: types.ValidationResult{}, Signal: SignalNone}
	}
	errs := Validate(step, d)
	if !errs.OK() {
		return transition(step, errs, SignalNone)
	}
	if step >= Last {
		return transition(step, errs, SignalReadyForPreview)
	}
	return transition(step+1, errs, SignalNone)
}

// Retreat moves to the previous step without validating. From the first step
// it signals SignalExitWizard instead. A step outside the table is returned
// unchanged with no signal.
func Retreat(step Step) Transition {
	if !step.Valid() {
		return Transition{Step: step, Errors: types.ValidationResult{}, Signal: SignalNone}
	}
	if step <= First {
		return transition(step, nil, SignalExitWizard)
	}
	return transition(step-1, nil, SignalNone)
}
