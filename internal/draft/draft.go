// Package draft holds the client-side editing model of a resume: the starting
// draft, hydration from a stored record, immutable reducer edits, and the
// sanitizer that prepares a draft for saving.
package draft

import (
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// UntitledResume is the title used when a hydrated record has none.
const UntitledResume = "Untitled"

// New returns the draft the wizard starts from: one blank entry in each
// repeating section and one blank interest, so every step has a form to show.
func New() types.Draft {
	return types.Draft{
		Template:       types.Template{Theme: types.DefaultTheme, ColorPalette: []string{}},
		WorkExperience: []types.WorkExperience{{}},
		Education:      []types.Education{{}},
		Skills:         []types.Skill{{}},
		Projects:       []types.Project{{}},
		Certifications: []types.Certification{{}},
		Languages:      []types.Language{{}},
		Interests:      []string{""},
	}
}

// Hydrate overlays a fetched record onto base. Each top-level section of
// fetched replaces the one in base only when present; collections that are nil
// in fetched keep base's value.
func Hydrate(base, fetched types.Draft) types.Draft {
	out := base.Clone()
	f := fetched.Clone()

	out.Title = f.Title
	if !types.Filled(out.Title) {
		out.Title = UntitledResume
	}
	if f.ThumbnailLink != "" {
		out.ThumbnailLink = f.ThumbnailLink
	}
	if f.Template.Theme != "" {
		out.Template.Theme = f.Template.Theme
	}
	if f.Template.ColorPalette != nil {
		out.Template.ColorPalette = f.Template.ColorPalette
	}
	if f.ProfileInfo != (types.ProfileInfo{}) {
		out.ProfileInfo = f.ProfileInfo
	}
	if f.ContactInfo != (types.ContactInfo{}) {
		out.ContactInfo = f.ContactInfo
	}
	if f.WorkExperience != nil {
		out.WorkExperience = f.WorkExperience
	}
	if f.Education != nil {
		out.Education = f.Education
	}
	if f.Skills != nil {
		out.Skills = f.Skills
	}
	if f.Projects != nil {
		out.Projects = f.Projects
	}
	if f.Certifications != nil {
		out.Certifications = f.Certifications
	}
	if f.Languages != nil {
		out.Languages = f.Languages
	}
	if f.Interests != nil {
		out.Interests = f.Interests
	}
	return out
}
