package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResumeRequest_Validate(t *testing.T) {
	req := CreateResumeRequest{Title: "  Backend  "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Backend", req.Title, "the title is trimmed")

	assert.Error(t, (&CreateResumeRequest{Title: "   "}).Validate())
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, (&CreateResumeRequest{Title: string(long)}).Validate())
}

func TestResumePatch_ApplyTo(t *testing.T) {
	base := NewEmptyResume("Original")
	base.ProfileInfo.FullName = "Ada"
	base.Skills = []Skill{{Name: "Go", Progress: 80}}
	base.Interests = []string{"chess"}

	var patch ResumePatch
	require.NoError(t, json.Unmarshal([]byte(`{"skills": [{"name": "Rust", "progress": 40}], "interests": null}`), &patch))
	got := patch.ApplyTo(base)

	assert.Equal(t, "Original", got.Title, "absent fields are kept")
	assert.Equal(t, "Ada", got.ProfileInfo.FullName)
	assert.Equal(t, []Skill{{Name: "Rust", Progress: 40}}, got.Skills)
	assert.Equal(t, []string{"chess"}, got.Interests, "null is the same as absent")
	assert.Equal(t, "Go", base.Skills[0].Name, "the base is not modified")

	empty := []string{}
	title := "Renamed"
	got = ResumePatch{Title: &title, Interests: &empty}.ApplyTo(base)
	assert.Equal(t, "Renamed", got.Title)
	assert.Empty(t, got.Interests)
	assert.NotNil(t, got.Interests)
}

func TestResumePatch_Validate(t *testing.T) {
	blank := ""
	assert.Error(t, (&ResumePatch{Title: &blank}).Validate())
	assert.NoError(t, (&ResumePatch{}).Validate())
}
