// Package types provides type definitions for structured data used throughout the resume builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTheme is the template theme applied when none is chosen.
const DefaultTheme = "modern"

// Section names a repeating collection within a draft. The values match the
// JSON keys of the document.
type Section string

// Repeating sections of a resume draft
const (
	SectionWork           Section = "workExperience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionInterests      Section = "interests"
)

// Template holds the visual theme selection of a resume.
type Template struct {
	Theme        string   `json:"theme"`
	ColorPalette []string `json:"colorPalette"`
}

// ProfileInfo is the header block of a resume.
type ProfileInfo struct {
	ProfilePreviewURL string `json:"profilePreviewUrl,omitempty"`
	FullName          string `json:"fullName"`
	Designation       string `json:"designation"`
	Summary           string `json:"summary"`
}

// ContactInfo holds the ways to reach the candidate. Only email and phone
// count toward completion.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedIn"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// WorkExperience is one entry of the work history.
type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   *Date  `json:"startDate"`
	EndDate     *Date  `json:"endDate"`
	Description string `json:"description"`
}

// Education is one entry of the education history.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   *Date  `json:"startDate"`
	EndDate     *Date  `json:"endDate"`
}

// Skill is a named skill with a self-assessed level in [0,100].
type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// Project is a showcased project.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHubLink  string `json:"githubLink"`
	LiveDemo    string `json:"liveDemo"`
}

// Certification is an earned certificate.
type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   *Date  `json:"year"`
}

// Language is a spoken language with a proficiency level in [0,100].
type Language struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// Draft is the editable resume document: the persisted record minus storage
// metadata.
type Draft struct {
	Title          string           `json:"title"`
	ThumbnailLink  string           `json:"thumbnailLink"`
	Template       Template         `json:"template"`
	ProfileInfo    ProfileInfo      `json:"profileInfo"`
	ContactInfo    ContactInfo      `json:"contactInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Interests      []string         `json:"interests"`
}

// Resume is a persisted resume owned by a user.
type Resume struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	Draft
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidationResult is the ordered list of human-readable rule violations
// produced by a step validator. Empty means the step passes.
type ValidationResult []string

// OK reports whether no rule was violated.
func (v ValidationResult) OK() bool {
	return len(v) == 0
}

// Join renders the violations as one message, the way the form shows them.
func (v ValidationResult) Join() string {
	return strings.Join(v, ", ")
}

// NewEmptyResume returns a draft with every collection present and empty.
func NewEmptyResume(title string) Draft {
	return Draft{
		Title:          title,
		Template:       Template{ColorPalette: []string{}},
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Interests:      []string{},
	}
}

// Normalized returns a copy of the draft where every absent collection is an
// empty one.
func (d Draft) Normalized() Draft {
	if d.Template.ColorPalette == nil {
		d.Template.ColorPalette = []string{}
	}
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
	return d
}

// Clone returns a deep copy of the draft, so edits to the copy never reach
// the original. Nil collections stay nil.
func (d Draft) Clone() Draft {
	c := d
	c.Template.ColorPalette = cloneSlice(d.Template.ColorPalette)
	c.WorkExperience = cloneSlice(d.WorkExperience)
	for i := range c.WorkExperience {
		c.WorkExperience[i].StartDate = c.WorkExperience[i].StartDate.Clone()
		c.WorkExperience[i].EndDate = c.WorkExperience[i].EndDate.Clone()
	}
	c.Education = cloneSlice(d.Education)
	for i := range c.Education {
		c.Education[i].StartDate = c.Education[i].StartDate.Clone()
		c.Education[i].EndDate = c.Education[i].EndDate.Clone()
	}
	c.Skills = cloneSlice(d.Skills)
	c.Projects = cloneSlice(d.Projects)
	c.Certifications = cloneSlice(d.Certifications)
	for i := range c.Certifications {
		c.Certifications[i].Year = c.Certifications[i].Year.Clone()
	}
	c.Languages = cloneSlice(d.Languages)
	c.Interests = cloneSlice(d.Interests)
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// Filled reports whether s is non-blank after trimming.
func Filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasContent reports whether the entry has at least one non-blank field.
func (w WorkExperience) HasContent() bool {
	return Filled(w.Company) || Filled(w.Role) || Filled(w.Description) ||
		w.StartDate.Present() || w.EndDate.Present()
}

// HasContent reports whether the entry has at least one non-blank field.
func (e Education) HasContent() bool {
	return Filled(e.Degree) || Filled(e.Institution) ||
		e.StartDate.Present() || e.EndDate.Present()
}

// HasContent reports whether the skill is named. An unnamed skill is noise
// regardless of its level.
func (s Skill) HasContent() bool {
	return Filled(s.Name)
}

// HasContent reports whether the entry has at least one non-blank field.
func (p Project) HasContent() bool {
	return Filled(p.Title) || Filled(p.Description) || Filled(p.GitHubLink) || Filled(p.LiveDemo)
}

// HasContent reports whether the entry has at least one non-blank field.
func (c Certification) HasContent() bool {
	return Filled(c.Title) || Filled(c.Issuer) || c.Year.Present()
}

// HasContent reports whether the language is named.
func (l Language) HasContent() bool {
	return Filled(l.Name)
}
