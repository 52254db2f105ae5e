package draft

import (
	"testing"
	"time"

	"github.com/princejain-2004/RESUME-EXPERT/internal/completion"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, types.DefaultTheme, d.Template.Theme)
	assert.Len(t, d.WorkExperience, 1)
	assert.Len(t, d.Education, 1)
	assert.Len(t, d.Skills, 1)
	assert.Len(t, d.Projects, 1)
	assert.Len(t, d.Certifications, 1)
	assert.Len(t, d.Languages, 1)
	assert.Equal(t, []string{""}, d.Interests)
	assert.Equal(t, 0, completion.Score(d), "blank starter entries score nothing")
}

func TestHydrate(t *testing.T) {
	t.Run("missing title falls back", func(t *testing.T) {
		out := Hydrate(New(), types.Draft{})
		assert.Equal(t, UntitledResume, out.Title)
		assert.Len(t, out.Skills, 1, "absent sections keep the defaults")
		assert.Equal(t, types.DefaultTheme, out.Template.Theme)
	})

	t.Run("present sections replace defaults", func(t *testing.T) {
		fetched := types.Draft{
			Title:       "Backend",
			Template:    types.Template{Theme: "classic"},
			ProfileInfo: types.ProfileInfo{FullName: "Ada"},
			Skills:      []types.Skill{{Name: "Go", Progress: 90}, {Name: "SQL", Progress: 70}},
			Interests:   []string{},
		}
		out := Hydrate(New(), fetched)
		assert.Equal(t, "Backend", out.Title)
		assert.Equal(t, "classic", out.Template.Theme)
		assert.Equal(t, "Ada", out.ProfileInfo.FullName)
		assert.Len(t, out.Skills, 2)
		assert.Empty(t, out.Interests, "an empty fetched list is present and replaces the default")
		assert.Len(t, out.Projects, 1)
	})

	t.Run("does not alias inputs", func(t *testing.T) {
		fetched := types.Draft{Skills: []types.Skill{{Name: "Go"}}}
		out := Hydrate(New(), fetched)
		out.Skills[0].Name = "Rust"
		assert.Equal(t, "Go", fetched.Skills[0].Name)
	})
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	d := New()
	before := d.Clone()

	actions := []Action{
		SetTitle{Title: "x"},
		SetTemplate{Theme: "dark", Palette: []string{"#000"}},
		SetProfileField{Key: "fullName", Value: "Ada"},
		SetContactField{Key: "email", Value: "a@b.com"},
		SetItemField{Section: types.SectionWork, Index: 0, Key: "company", Value: "Acme"},
		SetItemField{Section: types.SectionWork, Index: 0, Key: "startDate", Value: "2020-01"},
		SetItemField{Section: types.SectionSkills, Index: 0, Key: "progress", Value: "50"},
		SetItemField{Section: types.SectionCertifications, Index: 0, Key: "year", Value: "2021-05-01"},
		SetInterest{Index: 0, Value: "chess"},
		AddItem{Section: types.SectionProjects},
		RemoveItem{Section: types.SectionEducation, Index: 0},
	}
	for _, a := range actions {
		_ = Apply(d, a)
	}
	assert.Equal(t, before, d)
}

func TestApply_Edits(t *testing.T) {
	d := ApplyAll(New(),
		SetProfileField{Key: "fullName", Value: "Ada"},
		SetContactField{Key: "phone", Value: "1234567890"},
		SetItemField{Section: types.SectionWork, Index: 0, Key: "role", Value: "Engineer"},
		SetItemField{Section: types.SectionWork, Index: 0, Key: "endDate", Value: "2024-03"},
		SetItemField{Section: types.SectionLanguages, Index: 0, Key: "name", Value: "English"},
		SetItemField{Section: types.SectionLanguages, Index: 0, Key: "progress", Value: "80"},
		AddItem{Section: types.SectionInterests},
		SetInterest{Index: 1, Value: "chess"},
	)

	assert.Equal(t, "Ada", d.ProfileInfo.FullName)
	assert.Equal(t, "1234567890", d.ContactInfo.Phone)
	assert.Equal(t, "Engineer", d.WorkExperience[0].Role)
	require.True(t, d.WorkExperience[0].EndDate.Present())
	assert.Equal(t, time.March, d.WorkExperience[0].EndDate.Month())
	assert.Equal(t, types.Language{Name: "English", Progress: 80}, d.Languages[0])
	assert.Equal(t, []string{"", "chess"}, d.Interests)
}

func TestApply_NoOps(t *testing.T) {
	d := New()
	tests := []struct {
		name   string
		action Action
	}{
		{"nil action", nil},
		{"unknown profile key", SetProfileField{Key: "nickname", Value: "x"}},
		{"unknown contact key", SetContactField{Key: "fax", Value: "x"}},
		{"index past end", SetItemField{Section: types.SectionSkills, Index: 3, Key: "name", Value: "Go"}},
		{"negative index", SetItemField{Section: types.SectionWork, Index: -1, Key: "role", Value: "x"}},
		{"unknown section", SetItemField{Section: "hobbies", Index: 0, Key: "name", Value: "x"}},
		{"unknown item key", SetItemField{Section: types.SectionProjects, Index: 0, Key: "stars", Value: "5"}},
		{"bad level", SetItemField{Section: types.SectionSkills, Index: 0, Key: "progress", Value: "lots"}},
		{"interest out of range", SetInterest{Index: 4, Value: "x"}},
		{"remove out of range", RemoveItem{Section: types.SectionSkills, Index: 9}},
		{"add to unknown section", AddItem{Section: "hobbies"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, d, Apply(d, tt.action))
		})
	}
}

func TestApply_MalformedDateClears(t *testing.T) {
	d := ApplyAll(New(),
		SetItemField{Section: types.SectionEducation, Index: 0, Key: "startDate", Value: "2019-09"},
		SetItemField{Section: types.SectionEducation, Index: 0, Key: "startDate", Value: "soon"},
	)
	assert.Nil(t, d.Education[0].StartDate)
}

func TestRemoveItem(t *testing.T) {
	d := types.NewEmptyResume("")
	d.Skills = []types.Skill{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	out := Apply(d, RemoveItem{Section: types.SectionSkills, Index: 1})
	assert.Equal(t, []types.Skill{{Name: "A"}, {Name: "C"}}, out.Skills)
	assert.Len(t, d.Skills, 3)
}

func TestSanitize(t *testing.T) {
	d := New()
	d.Title = "  Resume  "
	d.Template.Theme = ""
	d.ProfileInfo.FullName = "  Ada  "
	d.ContactInfo.Email = " ada@example.com "
	d.WorkExperience = []types.WorkExperience{{}, {Company: " Acme "}, {Role: "   "}}
	d.Skills = []types.Skill{{Progress: 50}, {Name: "Go", Progress: 80}}
	d.Languages = []types.Language{{Name: " "}}
	d.Interests = []string{"", "  chess ", " "}

	out := Sanitize(d)
	assert.Equal(t, "Resume", out.Title)
	assert.Equal(t, types.DefaultTheme, out.Template.Theme)
	assert.Equal(t, "Ada", out.ProfileInfo.FullName)
	assert.Equal(t, "ada@example.com", out.ContactInfo.Email)
	assert.Equal(t, []types.WorkExperience{{Company: "Acme"}}, out.WorkExperience)
	assert.Equal(t, []types.Skill{{Name: "Go", Progress: 80}}, out.Skills)
	assert.Empty(t, out.Languages)
	assert.NotNil(t, out.Languages)
	assert.Empty(t, out.Education)
	assert.Equal(t, []string{"chess"}, out.Interests)
	assert.Equal(t, completion.Score(out.Draft), out.Completion)
	assert.Equal(t, completion.Score(d), out.Completion, "dropping blank entries does not change the score")

	assert.Equal(t, "  Ada  ", d.ProfileInfo.FullName, "input is not modified")
}
