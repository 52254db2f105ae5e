// Package wizard drives the step-by-step resume form: the ordered steps, the
// validator each step runs before the user may move on, and the transitions
// between steps.
package wizard

import (
	"fmt"
	"math"
)

// Step is one stage of the form. Steps are totally ordered; the zero value is
// the first step.
type Step int

// Form steps in order
const (
	StepProfile Step = iota
	StepContact
	StepWork
	StepEducation
	StepSkills
	StepProjects
	StepCertifications
	StepAdditional
)

// StepCount is the number of steps in the form.
const StepCount = int(StepAdditional) + 1

// First and Last bound the form.
const (
	First = StepProfile
	Last  = StepAdditional
)

// aliases maps the tags the web form uses to their steps.
var aliases = map[string]Step{
	"profile-info":    StepProfile,
	"contact-info":    StepContact,
	"work-experience": StepWork,
	"education-info":  StepEducation,
	"additionalInfo":  StepAdditional,
	"additional-info": StepAdditional,
}

// UnknownStepError reports a step name that matches no step.
type UnknownStepError struct {
	Name string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown wizard step: %q", e.Name)
}

// ParseStep resolves a canonical step name or a form tag.
func ParseStep(name string) (Step, error) {
	for _, def := range table {
		if def.Name == name {
			return def.Step, nil
		}
	}
	if s, ok := aliases[name]; ok {
		return s, nil
	}
	return 0, &UnknownStepError{Name: name}
}

// Valid reports whether s is one of the form steps.
func (s Step) Valid() bool {
	return s >= First && s <= Last
}

// Index is the zero-based position of the step.
func (s Step) Index() int {
	return int(s)
}

// String returns the canonical step name.
func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return table[s].Name
}

// Progress is the positional progress of the step as a percentage:
// index / (StepCount-1), rounded.
func (s Step) Progress() int {
	return int(math.Round(float64(s.Index()) * 100 / float64(StepCount-1)))
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid step %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Step) UnmarshalText(text []byte) error {
	parsed, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
