package server

import (
	"net/http"

	"github.com/princejain-2004/RESUME-EXPERT/internal/completion"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
	"github.com/princejain-2004/RESUME-EXPERT/internal/wizard"
)

// StepsResponse is the response of GET /wizard/steps
type StepsResponse struct {
	Steps []wizard.Definition `json:"steps"`
}

// ValidateStepResponse is the response of POST /wizard/validate
type ValidateStepResponse struct {
	Step       wizard.Step            `json:"step"`
	Errors     types.ValidationResult `json:"errors"`
	Completion int                    `json:"completion"`
}

// TransitionResponse is the response of POST /wizard/advance and /wizard/retreat
type TransitionResponse struct {
	Step       wizard.Step            `json:"step"`
	Progress   int                    `json:"progress"`
	Errors     types.ValidationResult `json:"errors"`
	Signal     wizard.Signal          `json:"signal"`
	Completion int                    `json:"completion"`
}

// handleListSteps returns the wizard's step table
func (s *Server) handleListSteps(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StepsResponse{Steps: wizard.Definitions()})
}

// decodeWizardRequest reads a {step, draft} body. Failures have already been
// written to w.
func decodeWizardRequest(w http.ResponseWriter, r *http.Request) (wizard.Step, types.Draft, bool) {
	var req types.WizardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return 0, types.Draft{}, false
	}
	if err := req.Validate(); err != nil {
		writeError(w, newValidationError(err))
		return 0, types.Draft{}, false
	}
	step, err := wizard.ParseStep(req.Step)
	if err != nil {
		writeError(w, err)
		return 0, types.Draft{}, false
	}
	return step, req.Draft, true
}

// handleValidateStep runs one step's validator without navigating
func (s *Server) handleValidateStep(w http.ResponseWriter, r *http.Request) {
	step, d, ok := decodeWizardRequest(w, r)
	if !ok {
		return
	}
	errs := wizard.Validate(step, d)
	if !errs.OK() {
		s.metrics.RecordValidationFailure(step.String())
	}
	writeJSON(w, http.StatusOK, ValidateStepResponse{Step: step, Errors: errs, Completion: completion.Score(d)})
}

// handleAdvance validates the current step and moves forward if it passes
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	step, d, ok := decodeWizardRequest(w, r)
	if !ok {
		return
	}
	c := wizard.ResumeAt(step, d)
	tr := c.Advance()
	if !tr.Errors.OK() {
		s.metrics.RecordValidationFailure(step.String())
	}
	s.metrics.RecordTransition("advance", step.String(), outcome(tr))
	s.writeTransition(w, tr, c.Status())
}

// handleRetreat moves back one step without validating
func (s *Server) handleRetreat(w http.ResponseWriter, r *http.Request) {
	step, d, ok := decodeWizardRequest(w, r)
	if !ok {
		return
	}
	c := wizard.ResumeAt(step, d)
	tr := c.Retreat()
	s.metrics.RecordTransition("retreat", step.String(), outcome(tr))
	s.writeTransition(w, tr, c.Status())
}

func (s *Server) writeTransition(w http.ResponseWriter, tr wizard.Transition, st wizard.Status) {
	writeJSON(w, http.StatusOK, TransitionResponse{
		Step:       tr.Step,
		Progress:   tr.Progress,
		Errors:     tr.Errors,
		Signal:     tr.Signal,
		Completion: st.Completion,
	})
}

// outcome labels a transition for metrics.
func outcome(tr wizard.Transition) string {
	switch {
	case tr.Signal != wizard.SignalNone:
		return string(tr.Signal)
	case tr.Moved():
		return "moved"
	default:
		return "refused"
	}
}
