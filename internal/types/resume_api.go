package types

import (
	"strings"
	"time"
)

// NewBadgeWindow is how long after creation a resume is flagged as new.
const NewBadgeWindow = 7 * 24 * time.Hour

// CreateResumeRequest is the body of POST /resumes.
type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// Validate trims the title and checks the request against its struct tags.
func (r *CreateResumeRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validate.Struct(r)
}

// ResumePatch carries the updatable fields of a resume. A nil field was not
// sent and leaves the stored value alone.
type ResumePatch struct {
	Title          *string           `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ThumbnailLink  *string           `json:"thumbnailLink,omitempty"`
	Template       *Template         `json:"template,omitempty"`
	ProfileInfo    *ProfileInfo      `json:"profileInfo,omitempty"`
	ContactInfo    *ContactInfo      `json:"contactInfo,omitempty"`
	WorkExperience *[]WorkExperience `json:"workExperience,omitempty"`
	Education      *[]Education      `json:"education,omitempty"`
	Skills         *[]Skill          `json:"skills,omitempty"`
	Projects       *[]Project        `json:"projects,omitempty"`
	Certifications *[]Certification  `json:"certifications,omitempty"`
	Languages      *[]Language       `json:"languages,omitempty"`
	Interests      *[]string         `json:"interests,omitempty"`
}

// ApplyTo returns d with every field present in the patch replaced. The
// result is normalized so collections are never nil.
func (p ResumePatch) ApplyTo(d Draft) Draft {
	d = d.Clone()
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.ThumbnailLink != nil {
		d.ThumbnailLink = *p.ThumbnailLink
	}
	if p.Template != nil {
		d.Template = *p.Template
	}
	if p.ProfileInfo != nil {
		d.ProfileInfo = *p.ProfileInfo
	}
	if p.ContactInfo != nil {
		d.ContactInfo = *p.ContactInfo
	}
	if p.WorkExperience != nil {
		d.WorkExperience = *p.WorkExperience
	}
	if p.Education != nil {
		d.Education = *p.Education
	}
	if p.Skills != nil {
		d.Skills = *p.Skills
	}
	if p.Projects != nil {
		d.Projects = *p.Projects
	}
	if p.Certifications != nil {
		d.Certifications = *p.Certifications
	}
	if p.Languages != nil {
		d.Languages = *p.Languages
	}
	if p.Interests != nil {
		d.Interests = *p.Interests
	}
	return d.Normalized()
}

// ResumeView is a resume as served to clients, with derived display fields.
type ResumeView struct {
	Resume
	Completion int  `json:"completion"`
	IsNew      bool `json:"isNew"`
}

// ResumeList is the response of GET /resumes.
type ResumeList struct {
	Resumes []ResumeView `json:"resumes"`
	Count   int          `json:"count"`
}

// UploadImagesResponse is the response of PUT /resumes/{id}/upload-images.
type UploadImagesResponse struct {
	Message           string `json:"message"`
	ThumbnailLink     string `json:"thumbnailLink"`
	ProfilePreviewURL string `json:"profilePreviewUrl"`
}

// WizardRequest is the body of the wizard endpoints.
type WizardRequest struct {
	Step  string `json:"step" validate:"required"`
	Draft Draft  `json:"draft"`
}
