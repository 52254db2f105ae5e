package completion

import (
	"testing"
	"time"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDraft() types.Draft {
	d := types.NewEmptyResume("Full")
	d.ProfileInfo = types.ProfileInfo{FullName: "Ada Lovelace", Designation: "Engineer", Summary: "Writes programs"}
	d.ContactInfo = types.ContactInfo{Email: "ada@example.com", Phone: "1234567890"}
	d.WorkExperience = []types.WorkExperience{{
		Company:     "Analytical Engines",
		Role:        "Programmer",
		StartDate:   types.NewDate(1842, time.January, 1),
		EndDate:     types.NewDate(1843, time.January, 1),
		Description: "Notes on the engine",
	}}
	d.Education = []types.Education{{
		Degree:      "Mathematics",
		Institution: "Home",
		StartDate:   types.NewDate(1830, time.January, 1),
		EndDate:     types.NewDate(1835, time.January, 1),
	}}
	d.Skills = []types.Skill{{Name: "Go", Progress: 100}}
	d.Projects = []types.Project{{Title: "Note G", Description: "Bernoulli numbers", GitHubLink: "https://github.com/a/b", LiveDemo: "https://example.com"}}
	d.Certifications = []types.Certification{{Title: "CKA", Issuer: "CNCF", Year: types.NewDate(2020, time.June, 1)}}
	d.Languages = []types.Language{{Name: "English", Progress: 100}}
	d.Interests = []string{"Poetry"}
	return d
}

func TestWeights_SumToHundred(t *testing.T) {
	sum := 0.0
	for _, w := range Weights() {
		sum += w.Points
	}
	assert.Equal(t, 100.0, sum)
}

func TestScore_EmptyDraft(t *testing.T) {
	assert.Equal(t, 0, Score(types.NewEmptyResume("")))
	assert.Equal(t, 0, Score(types.Draft{}), "nil collections are treated as empty")
}

func TestScore_FullDraft(t *testing.T) {
	assert.Equal(t, 100, Score(fullDraft()))
}

func TestScore_OnlyFullName(t *testing.T) {
	d := types.NewEmptyResume("")
	d.ProfileInfo.FullName = "Ada"
	assert.Equal(t, 7, Score(d))
}

func TestScore_BlankAfterTrimIsNotFilled(t *testing.T) {
	d := types.NewEmptyResume("")
	d.ProfileInfo.FullName = "   "
	d.ContactInfo.Email = "\t"
	assert.Equal(t, 0, Score(d))
}

func TestScore_UncountedContactFieldsIgnored(t *testing.T) {
	d := types.NewEmptyResume("")
	d.ContactInfo = types.ContactInfo{Location: "London", LinkedIn: "x", GitHub: "y", Website: "z"}
	assert.Equal(t, 0, Score(d))
}

func TestBreakdown_SkillWithZeroProgress(t *testing.T) {
	d := types.NewEmptyResume("")
	d.Skills = []types.Skill{{Name: "Go", Progress: 0}}

	for _, c := range Breakdown(d) {
		if c.Category == CategorySkills {
			assert.Equal(t, 1, c.Filled)
			assert.Equal(t, 2, c.Total)
			assert.InDelta(t, 5.0, c.Points, 1e-9)
			return
		}
	}
	t.Fatal("skills category missing from breakdown")
}

func TestBreakdown_BlankEntriesDoNotDilute(t *testing.T) {
	d := types.NewEmptyResume("")
	d.Projects = []types.Project{
		{Title: "A", Description: "B", GitHubLink: "C", LiveDemo: "D"},
		{},
		{Title: "  "},
	}
	b := Breakdown(d)
	require.Len(t, b, 7)
	proj := b[5]
	assert.Equal(t, CategoryProjects, proj.Category)
	assert.Equal(t, 4, proj.Total)
	assert.InDelta(t, 10.0, proj.Points, 1e-9)
}

func TestBreakdown_PartialEntriesAverage(t *testing.T) {
	d := types.NewEmptyResume("")
	d.WorkExperience = []types.WorkExperience{
		{Company: "A", Role: "B", Description: "C", StartDate: types.NewDate(2020, 1, 1), EndDate: types.NewDate(2021, 1, 1)},
		{Company: "D"},
	}
	work := Breakdown(d)[2]
	assert.Equal(t, 6, work.Filled)
	assert.Equal(t, 10, work.Total)
	assert.InDelta(t, 15.0, work.Points, 1e-9)
	assert.Equal(t, 15, Score(d))
}

func TestBreakdown_DateOnlyEntryIsValid(t *testing.T) {
	d := types.NewEmptyResume("")
	d.Education = []types.Education{{StartDate: types.NewDate(2019, 9, 1)}}
	edu := Breakdown(d)[3]
	assert.Equal(t, 1, edu.Filled)
	assert.Equal(t, 4, edu.Total)
}

func TestBreakdown_UnnamedSkillIsNotValid(t *testing.T) {
	d := types.NewEmptyResume("")
	d.Skills = []types.Skill{{Progress: 80}}
	assert.Equal(t, 0, Breakdown(d)[4].Total)
}

func TestBreakdown_ExtraFlags(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Draft)
		filled int
	}{
		{"none", func(*types.Draft) {}, 0},
		{"cert with year only", func(d *types.Draft) {
			d.Certifications = []types.Certification{{Year: types.NewDate(2020, 1, 1)}}
		}, 1},
		{"unnamed language", func(d *types.Draft) {
			d.Languages = []types.Language{{Progress: 50}}
		}, 0},
		{"later interest counts", func(d *types.Draft) {
			d.Interests = []string{"", " ", "chess"}
		}, 1},
		{"all three", func(d *types.Draft) {
			d.Certifications = []types.Certification{{Issuer: "AWS"}}
			d.Languages = []types.Language{{Name: "French"}}
			d.Interests = []string{"chess"}
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := types.NewEmptyResume("")
			tt.mutate(&d)
			extra := Breakdown(d)[6]
			assert.Equal(t, CategoryExtra, extra.Category)
			assert.Equal(t, tt.filled, extra.Filled)
			assert.Equal(t, 3, extra.Total)
		})
	}
}

func TestScore_SumsBeforeRounding(t *testing.T) {
	// profile 1/3 (6.67) + extra 1/3 (1.67) = 8.33; rounding per category
	// would give 7 + 2 = 9.
	d := types.NewEmptyResume("")
	d.ProfileInfo.FullName = "Ada"
	d.Interests = []string{"chess"}
	assert.Equal(t, 8, Score(d))
}

func TestScore_MonotonicWithinValidEntries(t *testing.T) {
	edits := []func(*types.Draft){
		func(d *types.Draft) { d.ProfileInfo.FullName = "Ada" },
		func(d *types.Draft) { d.ProfileInfo.Designation = "Engineer" },
		func(d *types.Draft) { d.ContactInfo.Phone = "1234567890" },
		func(d *types.Draft) { d.WorkExperience[0].Role = "Lead" },
		func(d *types.Draft) { d.WorkExperience[0].EndDate = types.NewDate(2024, 1, 1) },
		func(d *types.Draft) { d.Skills[0].Progress = 40 },
		func(d *types.Draft) { d.Projects[0].LiveDemo = "https://demo" },
		func(d *types.Draft) { d.Interests = append(d.Interests, "chess") },
		func(d *types.Draft) { d.Languages = append(d.Languages, types.Language{Name: "Hindi"}) },
	}

	d := types.NewEmptyResume("")
	d.WorkExperience = []types.WorkExperience{{Company: "Acme"}}
	d.Skills = []types.Skill{{Name: "Go"}}
	d.Projects = []types.Project{{Title: "CLI"}}

	prev := Score(d)
	for i, edit := range edits {
		edit(&d)
		next := Score(d)
		assert.GreaterOrEqual(t, next, prev, "edit %d lowered the score", i)
		prev = next
	}
}

func TestScore_Deterministic(t *testing.T) {
	d := fullDraft()
	d.Skills = append(d.Skills, types.Skill{Name: "Rust"})
	before := d.Clone()

	first := Score(d)
	second := Score(d)
	assert.Equal(t, first, second)
	assert.Equal(t, before, d, "scoring must not mutate its input")
}
