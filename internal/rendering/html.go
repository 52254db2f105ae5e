package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Themes that have their own layout rules. Anything else renders as the
// default theme.
var themes = map[string]bool{
	types.DefaultTheme: true,
	"classic":          true,
	"minimal":          true,
}

const (
	templateName  = "resume.html.tmpl"
	defaultAccent = "#1f2937"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var (
	tmplOnce sync.Once
	tmpl     *template.Template
	tmplErr  error
)

// TemplateData is the view passed to the resume template.
type TemplateData struct {
	Title          string
	Theme          string
	Accent         template.CSS
	Profile        types.ProfileInfo
	Contact        []ContactLine
	Work           []WorkSection
	Education      []EducationSection
	Skills         []LevelSection
	Projects       []types.Project
	Certifications []CertificationSection
	Languages      []LevelSection
	Interests      []string
}

// ContactLine is one contact detail; Href is empty for plain text.
type ContactLine struct {
	Label string
	Value string
	Href  string
}

// WorkSection is a work entry with its date range formatted.
type WorkSection struct {
	Company     string
	Role        string
	Dates       string
	Description string
}

// EducationSection is an education entry with its date range formatted.
type EducationSection struct {
	Degree      string
	Institution string
	Dates       string
}

// LevelSection is a skill or language with its level.
type LevelSection struct {
	Name  string
	Level int
}

// CertificationSection is a certification with its year formatted.
type CertificationSection struct {
	Title  string
	Issuer string
	Year   string
}

func loadTemplate() (*template.Template, error) {
	tmplOnce.Do(func() {
		tmpl, tmplErr = template.New(templateName).ParseFS(templateFS, "templates/"+templateName)
		if tmplErr != nil {
			tmplErr = &TemplateError{Template: templateName, Message: "failed to parse", Cause: tmplErr}
		}
	})
	return tmpl, tmplErr
}

// RenderHTML renders d as a standalone HTML document. Blank entries are left
// out so a draft renders the same before and after it is sanitized.
func RenderHTML(d types.Draft) (string, error) {
	t, err := loadTemplate()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, buildTemplateData(d)); err != nil {
		return "", &TemplateError{Template: templateName, Message: "failed to execute", Cause: err}
	}
	return buf.String(), nil
}

// buildTemplateData constructs the template view from a draft
func buildTemplateData(d types.Draft) *TemplateData {
	d = d.Normalized()
	data := &TemplateData{
		Title:   strings.TrimSpace(d.Title),
		Theme:   d.Template.Theme,
		Accent:  defaultAccent,
		Profile: d.ProfileInfo,
	}
	if !themes[data.Theme] {
		data.Theme = types.DefaultTheme
	}
	if len(d.Template.ColorPalette) > 0 && hexColor.MatchString(d.Template.ColorPalette[0]) {
		data.Accent = template.CSS(d.Template.ColorPalette[0])
	}
	data.Contact = contactLines(d.ContactInfo)

	for _, w := range d.WorkExperience {
		if w.HasContent() {
			data.Work = append(data.Work, WorkSection{
				Company: w.Company, Role: w.Role, Description: w.Description,
				Dates: formatRange(w.StartDate, w.EndDate),
			})
		}
	}
	for _, e := range d.Education {
		if e.HasContent() {
			data.Education = append(data.Education, EducationSection{
				Degree: e.Degree, Institution: e.Institution,
				Dates: formatRange(e.StartDate, e.EndDate),
			})
		}
	}
	for _, s := range d.Skills {
		if s.HasContent() {
			data.Skills = append(data.Skills, LevelSection{Name: s.Name, Level: clampLevel(s.Progress)})
		}
	}
	for _, p := range d.Projects {
		if p.HasContent() {
			data.Projects = append(data.Projects, p)
		}
	}
	for _, c := range d.Certifications {
		if c.HasContent() {
			cs := CertificationSection{Title: c.Title, Issuer: c.Issuer}
			if c.Year.Present() {
				cs.Year = fmt.Sprintf("%d", c.Year.Year())
			}
			data.Certifications = append(data.Certifications, cs)
		}
	}
	for _, l := range d.Languages {
		if l.HasContent() {
			data.Languages = append(data.Languages, LevelSection{Name: l.Name, Level: clampLevel(l.Progress)})
		}
	}
	for _, in := range d.Interests {
		if types.Filled(in) {
			data.Interests = append(data.Interests, strings.TrimSpace(in))
		}
	}
	return data
}

func contactLines(c types.ContactInfo) []ContactLine {
	var out []ContactLine
	add := func(label, value, href string) {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, ContactLine{Label: label, Value: value, Href: href})
		}
	}
	add("Email", c.Email, "mailto:"+strings.TrimSpace(c.Email))
	add("Phone", c.Phone, "")
	add("Location", c.Location, "")
	add("LinkedIn", c.LinkedIn, link(c.LinkedIn))
	add("GitHub", c.GitHub, link(c.GitHub))
	add("Website", c.Website, link(c.Website))
	return out
}

// link returns v as an absolute http(s) URL, or "" if it cannot be one.
func link(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return ""
	case strings.HasPrefix(v, "https://"), strings.HasPrefix(v, "http://"):
		return v
	case strings.Contains(v, "://"):
		return ""
	default:
		return "https://" + v
	}
}

// formatRange formats a date range as "Jan 2020 - Mar 2022". A missing end
// date renders as "Present".
func formatRange(start, end *types.Date) string {
	switch {
	case !start.Present() && !end.Present():
		return ""
	case !end.Present():
		return start.Format("Jan 2006") + " - Present"
	case !start.Present():
		return end.Format("Jan 2006")
	default:
		return start.Format("Jan 2006") + " - " + end.Format("Jan 2006")
	}
}

func clampLevel(v int) int {
	return max(0, min(100, v))
}
