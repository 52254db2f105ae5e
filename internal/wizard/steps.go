package wizard

import "github.com/princejain-2004/RESUME-EXPERT/internal/types"

// Definition describes one step of the form.
type Definition struct {
	Step     Step     `json:"-"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Index    int      `json:"index"`
	Progress int      `json:"progress"`
	Fields   []string `json:"fields"`
	validate Validator
}

// table is indexed by Step.
var table = [StepCount]Definition{
	{Step: StepProfile, Name: "profile", Title: "Personal Information",
		Fields: []string{"profileInfo"}, validate: validateProfile},
	{Step: StepContact, Name: "contact", Title: "Contact Information",
		Fields: []string{"contactInfo"}, validate: validateContact},
	{Step: StepWork, Name: "work", Title: "Work Experience",
		Fields: []string{string(types.SectionWork)}, validate: validateWork},
	{Step: StepEducation, Name: "education", Title: "Education",
		Fields: []string{string(types.SectionEducation)}, validate: validateEducation},
	{Step: StepSkills, Name: "skills", Title: "Skills",
		Fields: []string{string(types.SectionSkills)}, validate: validateSkills},
	{Step: StepProjects, Name: "projects", Title: "Projects",
		Fields: []string{string(types.SectionProjects)}, validate: validateProjects},
	{Step: StepCertifications, Name: "certifications", Title: "Certifications",
		Fields: []string{string(types.SectionCertifications)}, validate: validateCertifications},
	{Step: StepAdditional, Name: "additional", Title: "Additional Information",
		Fields: []string{string(types.SectionLanguages), string(types.SectionInterests)}, validate: validateAdditional},
}

// Definitions returns the step table in order.
func Definitions() []Definition {
	out := make([]Definition, 0, StepCount)
	for _, def := range table {
		def.Index = def.Step.Index()
		def.Progress = def.Step.Progress()
		def.Fields = append([]string(nil), def.Fields...)
		out = append(out, def)
	}
	return out
}

// Validate runs the validator registered for step against d. An unknown step
// yields an empty result.
func Validate(step Step, d types.Draft) types.ValidationResult {
	if !step.Valid() {
		return types.ValidationResult{}
	}
	return table[step].validate(d)
}

// ValidateAll runs every step validator and returns the failures keyed by step.
// Passing steps are omitted.
func ValidateAll(d types.Draft) map[Step]types.ValidationResult {
	out := make(map[Step]types.ValidationResult)
	for _, def := range table {
		if errs := def.validate(d); !errs.OK() {
			out[def.Step] = errs
		}
	}
	return out
}
