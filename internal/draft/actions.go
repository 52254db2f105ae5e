package draft

import (
	"strconv"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// Action is one edit to a draft. Apply never mutates its input; an action
// that targets an unknown field or an out-of-range index returns an unchanged
// copy.
type Action interface {
	apply(d *types.Draft)
}

// Apply returns d with action applied.
func Apply(d types.Draft, action Action) types.Draft {
	out := d.Clone()
	if action != nil {
		action.apply(&out)
	}
	return out
}

// ApplyAll applies actions in order.
func ApplyAll(d types.Draft, actions ...Action) types.Draft {
	out := d.Clone()
	for _, a := range actions {
		if a != nil {
			a.apply(&out)
		}
	}
	return out
}

// SetTitle renames the resume.
type SetTitle struct {
	Title string
}

func (a SetTitle) apply(d *types.Draft) { d.Title = a.Title }

// SetTemplate changes the theme and colour palette.
type SetTemplate struct {
	Theme   string
	Palette []string
}

func (a SetTemplate) apply(d *types.Draft) {
	d.Template.Theme = a.Theme
	d.Template.ColorPalette = append([]string{}, a.Palette...)
}

// SetProfileField sets one profileInfo field by its JSON key.
type SetProfileField struct {
	Key   string
	Value string
}

func (a SetProfileField) apply(d *types.Draft) {
	p := &d.ProfileInfo
	switch a.Key {
	case "fullName":
		p.FullName = a.Value
	case "designation":
		p.Designation = a.Value
	case "summary":
		p.Summary = a.Value
	case "profilePreviewUrl":
		p.ProfilePreviewURL = a.Value
	}
}

// SetContactField sets one contactInfo field by its JSON key.
type SetContactField struct {
	Key   string
	Value string
}

func (a SetContactField) apply(d *types.Draft) {
	c := &d.ContactInfo
	switch a.Key {
	case "email":
		c.Email = a.Value
	case "phone":
		c.Phone = a.Value
	case "location":
		c.Location = a.Value
	case "linkedIn":
		c.LinkedIn = a.Value
	case "github":
		c.GitHub = a.Value
	case "website":
		c.Website = a.Value
	}
}

// SetItemField sets one field of one entry in a repeating section. Values are
// the form's string representation: dates parse as types.ParseDate, levels as
// integers. Unparseable levels are ignored.
type SetItemField struct {
	Section types.Section
	Index   int
	Key     string
	Value   string
}

func (a SetItemField) apply(d *types.Draft) {
	switch a.Section {
	case types.SectionWork:
		if inRange(a.Index, len(d.WorkExperience)) {
			setWorkField(&d.WorkExperience[a.Index], a.Key, a.Value)
		}
	case types.SectionEducation:
		if inRange(a.Index, len(d.Education)) {
			setEducationField(&d.Education[a.Index], a.Key, a.Value)
		}
	case types.SectionSkills:
		if inRange(a.Index, len(d.Skills)) {
			s := &d.Skills[a.Index]
			setNamedLevel(&s.Name, &s.Progress, a.Key, a.Value)
		}
	case types.SectionProjects:
		if inRange(a.Index, len(d.Projects)) {
			setProjectField(&d.Projects[a.Index], a.Key, a.Value)
		}
	case types.SectionCertifications:
		if inRange(a.Index, len(d.Certifications)) {
			setCertificationField(&d.Certifications[a.Index], a.Key, a.Value)
		}
	case types.SectionLanguages:
		if inRange(a.Index, len(d.Languages)) {
			l := &d.Languages[a.Index]
			setNamedLevel(&l.Name, &l.Progress, a.Key, a.Value)
		}
	case types.SectionInterests:
		if inRange(a.Index, len(d.Interests)) {
			d.Interests[a.Index] = a.Value
		}
	}
}

// SetInterest replaces the interest at Index.
type SetInterest struct {
	Index int
	Value string
}

func (a SetInterest) apply(d *types.Draft) {
	if inRange(a.Index, len(d.Interests)) {
		d.Interests[a.Index] = a.Value
	}
}

// AddItem appends a blank entry to a repeating section.
type AddItem struct {
	Section types.Section
}

func (a AddItem) apply(d *types.Draft) {
	switch a.Section {
	case types.SectionWork:
		d.WorkExperience = append(d.WorkExperience, types.WorkExperience{})
	case types.SectionEducation:
		d.Education = append(d.Education, types.Education{})
	case types.SectionSkills:
		d.Skills = append(d.Skills, types.Skill{})
	case types.SectionProjects:
		d.Projects = append(d.Projects, types.Project{})
	case types.SectionCertifications:
		d.Certifications = append(d.Certifications, types.Certification{})
	case types.SectionLanguages:
		d.Languages = append(d.Languages, types.Language{})
	case types.SectionInterests:
		d.Interests = append(d.Interests, "")
	}
}

// RemoveItem deletes the entry at Index from a repeating section.
type RemoveItem struct {
	Section types.Section
	Index   int
}

func (a RemoveItem) apply(d *types.Draft) {
	switch a.Section {
	case types.SectionWork:
		d.WorkExperience = removeAt(d.WorkExperience, a.Index)
	case types.SectionEducation:
		d.Education = removeAt(d.Education, a.Index)
	case types.SectionSkills:
		d.Skills = removeAt(d.Skills, a.Index)
	case types.SectionProjects:
		d.Projects = removeAt(d.Projects, a.Index)
	case types.SectionCertifications:
		d.Certifications = removeAt(d.Certifications, a.Index)
	case types.SectionLanguages:
		d.Languages = removeAt(d.Languages, a.Index)
	case types.SectionInterests:
		d.Interests = removeAt(d.Interests, a.Index)
	}
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

// removeAt returns s without element i. The backing array of s is not
// touched, since it may be shared with the caller's draft.
func removeAt[T any](s []T, i int) []T {
	if !inRange(i, len(s)) {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func setWorkField(w *types.WorkExperience, key, value string) {
	switch key {
	case "company":
		w.Company = value
	case "role":
		w.Role = value
	case "description":
		w.Description = value
	case "startDate":
		w.StartDate = formDate(value)
	case "endDate":
		w.EndDate = formDate(value)
	}
}

func setEducationField(e *types.Education, key, value string) {
	switch key {
	case "degree":
		e.Degree = value
	case "institution":
		e.Institution = value
	case "startDate":
		e.StartDate = formDate(value)
	case "endDate":
		e.EndDate = formDate(value)
	}
}

func setProjectField(p *types.Project, key, value string) {
	switch key {
	case "title":
		p.Title = value
	case "description":
		p.Description = value
	case "githubLink":
		p.GitHubLink = value
	case "liveDemo":
		p.LiveDemo = value
	}
}

func setCertificationField(c *types.Certification, key, value string) {
	switch key {
	case "title":
		c.Title = value
	case "issuer":
		c.Issuer = value
	case "year":
		c.Year = formDate(value)
	}
}

// formDate parses a date input. Malformed input clears the date, as a
// malformed stored date decodes to absent.
func formDate(value string) *types.Date {
	d, err := types.ParseDate(value)
	if err != nil {
		return nil
	}
	return d
}

func setNamedLevel(name *string, level *int, key, value string) {
	switch key {
	case "name":
		*name = value
	case "progress":
		if value == "" {
			*level = 0
			return
		}
		if n, err := strconv.Atoi(value); err == nil {
			*level = n
		}
	}
}
