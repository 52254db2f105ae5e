package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

const (
	minSkillProgress = 1
	maxSkillProgress = 100
)

// Validator checks the fields a step owns. It never mutates the draft and
// reports every violated rule, not just the first.
type Validator func(types.Draft) types.ValidationResult

// violations accumulates messages for one validator run.
type violations struct {
	msgs types.ValidationResult
}

func (v *violations) require(ok bool, format string, args ...any) {
	if !ok {
		v.msgs = append(v.msgs, fmt.Sprintf(format, args...))
	}
}

// result returns an empty, non-nil result when nothing failed so callers
// always get a list.
func (v *violations) result() types.ValidationResult {
	if v.msgs == nil {
		return types.ValidationResult{}
	}
	return v.msgs
}

func validateProfile(d types.Draft) types.ValidationResult {
	var v violations
	p := d.ProfileInfo
	v.require(types.Filled(p.FullName), "Full Name is required")
	v.require(types.Filled(p.Designation), "Designation is required")
	v.require(types.Filled(p.Summary), "Summary is required")
	return v.result()
}

func validateContact(d types.Draft) types.ValidationResult {
	var v violations
	email := strings.TrimSpace(d.ContactInfo.Email)
	phone := strings.TrimSpace(d.ContactInfo.Phone)
	v.require(email != "" && emailPattern.MatchString(email), "Valid email is required.")
	v.require(phonePattern.MatchString(phone), "Valid 10-digit phone number is required")
	return v.result()
}

func validateWork(d types.Draft) types.ValidationResult {
	var v violations
	for i, w := range d.WorkExperience {
		n := i + 1
		v.require(types.Filled(w.Company), "Company is required in experience %d", n)
		v.require(types.Filled(w.Role), "Role is required in experience %d", n)
		v.require(w.StartDate.Present() && w.EndDate.Present(), "Start and End dates are required in experience %d", n)
	}
	return v.result()
}

func validateEducation(d types.Draft) types.ValidationResult {
	var v violations
	for i, e := range d.Education {
		n := i + 1
		v.require(types.Filled(e.Degree), "Degree is required in education %d", n)
		v.require(types.Filled(e.Institution), "Institution is required in education %d", n)
		v.require(e.StartDate.Present() && e.EndDate.Present(), "Start and End dates are required in education %d", n)
	}
	return v.result()
}

func validateSkills(d types.Draft) types.ValidationResult {
	var v violations
	for i, s := range d.Skills {
		n := i + 1
		v.require(types.Filled(s.Name), "Skill name is required in skill %d", n)
		v.require(s.Progress >= minSkillProgress && s.Progress <= maxSkillProgress,
			"Skill progress must be between %d and %d in skill %d", minSkillProgress, maxSkillProgress, n)
	}
	return v.result()
}

func validateProjects(d types.Draft) types.ValidationResult {
	var v violations
	for i, p := range d.Projects {
		n := i + 1
		v.require(types.Filled(p.Title), "Project Title is required in project %d", n)
		v.require(types.Filled(p.Description), "Project description is required in project %d", n)
	}
	return v.result()
}

func validateCertifications(d types.Draft) types.ValidationResult {
	var v violations
	for i, c := range d.Certifications {
		n := i + 1
		v.require(types.Filled(c.Title), "Certification Title is required in certification %d", n)
		v.require(types.Filled(c.Issuer), "Issuer is required in certification %d", n)
	}
	return v.result()
}

// validateAdditional accepts a named language and a non-blank interest at any
// position. Empty collections fail with the same message.
func validateAdditional(d types.Draft) types.ValidationResult {
	var v violations
	hasLanguage := false
	for _, l := range d.Languages {
		if l.HasContent() {
			hasLanguage = true
			break
		}
	}
	hasInterest := false
	for _, i := range d.Interests {
		if types.Filled(i) {
			hasInterest = true
			break
		}
	}
	v.require(hasLanguage, "At least one language is required")
	v.require(hasInterest, "At least one interest is required")
	return v.result()
}
