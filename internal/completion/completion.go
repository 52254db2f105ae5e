// Package completion scores how complete a resume draft is.
//
// The score is a weighted sum over seven fixed categories whose weights total
// 100. Repeating sections are averaged over their valid entries only, so a
// blank trailing entry never lowers the score, while a half-filled one does.
package completion

import (
	"math"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// Category names one weighted slice of the score.
type Category string

// Scored categories
const (
	CategoryProfile   Category = "profile"
	CategoryContact   Category = "contact"
	CategoryWork      Category = "work"
	CategoryEducation Category = "education"
	CategorySkills    Category = "skills"
	CategoryProjects  Category = "projects"
	CategoryExtra     Category = "extra" // certifications, languages and interests
)

const (
	minScore = 0
	maxScore = 100
)

// Weight is a category's share of the total score.
type Weight struct {
	Category Category
	Points   float64
	count    func(types.Draft) (filled, total int)
}

// weights is ordered as the categories appear in the form. The points sum to
// maxScore.
var weights = []Weight{
	{Category: CategoryProfile, Points: 20, count: countProfile},
	{Category: CategoryContact, Points: 15, count: countContact},
	{Category: CategoryWork, Points: 25, count: countWork},
	{Category: CategoryEducation, Points: 15, count: countEducation},
	{Category: CategorySkills, Points: 10, count: countSkills},
	{Category: CategoryProjects, Points: 10, count: countProjects},
	{Category: CategoryExtra, Points: 5, count: countExtra},
}

// Weights returns the category weights in form order.
func Weights() []Weight {
	out := make([]Weight, len(weights))
	copy(out, weights)
	return out
}

// Contribution is one category's share of a draft's score.
type Contribution struct {
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
	Filled   int      `json:"filled"`
	Total    int      `json:"total"`
	Points   float64  `json:"points"` // unrounded
}

// Breakdown returns the per-category contributions for d. A category with no
// valid entries has Total 0 and contributes nothing; its weight is not
// redistributed.
func Breakdown(d types.Draft) []Contribution {
	d = d.Normalized()
	out := make([]Contribution, 0, len(weights))
	for _, w := range weights {
		filled, total := w.count(d)
		c := Contribution{Category: w.Category, Weight: w.Points, Filled: filled, Total: total}
		if total > 0 {
			c.Points = w.Points * float64(filled) / float64(total)
		}
		out = append(out, c)
	}
	return out
}

// Score returns the completion percentage of d in [0,100]. Rounding and
// clamping happen once, after all categories are summed.
func Score(d types.Draft) int {
	sum := 0.0
	for _, c := range Breakdown(d) {
		sum += c.Points
	}
	score := int(math.Round(sum))
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// tally counts the filled flags.
func tally(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func countProfile(d types.Draft) (int, int) {
	p := d.ProfileInfo
	return tally(types.Filled(p.FullName), types.Filled(p.Designation), types.Filled(p.Summary)), 3
}

func countContact(d types.Draft) (int, int) {
	c := d.ContactInfo
	return tally(types.Filled(c.Email), types.Filled(c.Phone)), 2
}

func countWork(d types.Draft) (filled, total int) {
	const perEntry = 5
	for _, w := range d.WorkExperience {
		if !w.HasContent() {
			continue
		}
		total += perEntry
		filled += tally(types.Filled(w.Company), types.Filled(w.Role),
			w.StartDate.Present(), w.EndDate.Present(), types.Filled(w.Description))
	}
	return filled, total
}

func countEducation(d types.Draft) (filled, total int) {
	const perEntry = 4
	for _, e := range d.Education {
		if !e.HasContent() {
			continue
		}
		total += perEntry
		filled += tally(types.Filled(e.Degree), types.Filled(e.Institution),
			e.StartDate.Present(), e.EndDate.Present())
	}
	return filled, total
}

func countSkills(d types.Draft) (filled, total int) {
	const perEntry = 2
	for _, s := range d.Skills {
		if !s.HasContent() {
			continue
		}
		total += perEntry
		filled += tally(types.Filled(s.Name), s.Progress > 0)
	}
	return filled, total
}

func countProjects(d types.Draft) (filled, total int) {
	const perEntry = 4
	for _, p := range d.Projects {
		if !p.HasContent() {
			continue
		}
		total += perEntry
		filled += tally(types.Filled(p.Title), types.Filled(p.Description),
			types.Filled(p.GitHubLink), types.Filled(p.LiveDemo))
	}
	return filled, total
}

func countExtra(d types.Draft) (int, int) {
	hasCert, hasLang, hasInterest := false, false, false
	for _, c := range d.Certifications {
		if c.HasContent() {
			hasCert = true
			break
		}
	}
	for _, l := range d.Languages {
		if l.HasContent() {
			hasLang = true
			break
		}
	}
	for _, i := range d.Interests {
		if types.Filled(i) {
			hasInterest = true
			break
		}
	}
	return tally(hasCert, hasLang, hasInterest), 3
}
