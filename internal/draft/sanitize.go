package draft

import (
	"strings"

	"github.com/princejain-2004/RESUME-EXPERT/internal/completion"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// SavePayload is a draft cleaned for persistence plus its completion score.
type SavePayload struct {
	types.Draft
	Completion int `json:"completion"`
}

// Sanitize trims every string field, drops entries with no content, defaults
// the theme and scores the result. The input is not modified.
func Sanitize(d types.Draft) SavePayload {
	d = d.Clone().Normalized()
	trim := strings.TrimSpace

	d.Title = trim(d.Title)
	d.ThumbnailLink = trim(d.ThumbnailLink)
	if !types.Filled(d.Template.Theme) {
		d.Template.Theme = types.DefaultTheme
	}

	p := &d.ProfileInfo
	p.FullName, p.Designation, p.Summary = trim(p.FullName), trim(p.Designation), trim(p.Summary)
	p.ProfilePreviewURL = trim(p.ProfilePreviewURL)

	c := &d.ContactInfo
	c.Email, c.Phone, c.Location = trim(c.Email), trim(c.Phone), trim(c.Location)
	c.LinkedIn, c.GitHub, c.Website = trim(c.LinkedIn), trim(c.GitHub), trim(c.Website)

	d.WorkExperience = keep(d.WorkExperience, func(w *types.WorkExperience) bool {
		w.Company, w.Role, w.Description = trim(w.Company), trim(w.Role), trim(w.Description)
		return w.HasContent()
	})
	d.Education = keep(d.Education, func(e *types.Education) bool {
		e.Degree, e.Institution = trim(e.Degree), trim(e.Institution)
		return e.HasContent()
	})
	d.Skills = keep(d.Skills, func(s *types.Skill) bool {
		s.Name = trim(s.Name)
		return s.HasContent()
	})
	d.Projects = keep(d.Projects, func(p *types.Project) bool {
		p.Title, p.Description = trim(p.Title), trim(p.Description)
		p.GitHubLink, p.LiveDemo = trim(p.GitHubLink), trim(p.LiveDemo)
		return p.HasContent()
	})
	d.Certifications = keep(d.Certifications, func(c *types.Certification) bool {
		c.Title, c.Issuer = trim(c.Title), trim(c.Issuer)
		return c.HasContent()
	})
	d.Languages = keep(d.Languages, func(l *types.Language) bool {
		l.Name = trim(l.Name)
		return l.HasContent()
	})
	d.Interests = keep(d.Interests, func(s *string) bool {
		*s = trim(*s)
		return *s != ""
	})

	return SavePayload{Draft: d, Completion: completion.Score(d)}
}

// keep returns the elements for which fn, which may rewrite the element,
// reports true. The result is never nil.
func keep[T any](s []T, fn func(*T) bool) []T {
	out := make([]T, 0, len(s))
	for i := range s {
		v := s[i]
		if fn(&v) {
			out = append(out, v)
		}
	}
	return out
}
