package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/princejain-2004/RESUME-EXPERT/internal/completion"
	"github.com/princejain-2004/RESUME-EXPERT/internal/draft"
	"github.com/princejain-2004/RESUME-EXPERT/internal/metrics"
	"github.com/princejain-2004/RESUME-EXPERT/internal/schemas"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
	"github.com/princejain-2004/RESUME-EXPERT/internal/uploads"
)

// Image form fields accepted by the upload endpoint
const (
	FieldThumbnail    = "thumbnail"
	FieldProfileImage = "profileImage"
)

// ImageUpload is one file received by the upload endpoint.
type ImageUpload struct {
	Field    string
	Filename string
	Body     io.Reader
}

// ResumeService provides business logic for resume records
type ResumeService struct {
	store          ResumeStore
	files          *uploads.Store
	metrics        *metrics.Manager
	maxUploadBytes int64
	now            func() time.Time
}

// NewResumeService creates a ResumeService. files may be nil, in which case
// uploads are unavailable and deletes leave no files to clean up.
func NewResumeService(store ResumeStore, files *uploads.Store, m *metrics.Manager, maxUploadBytes int64) *ResumeService {
	return &ResumeService{
		store:          store,
		files:          files,
		metrics:        m,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

// view decorates a resume with its completion score and new badge.
func (s *ResumeService) view(r *types.Resume) *types.ResumeView {
	return &types.ResumeView{
		Resume:     *r,
		Completion: completion.Score(r.Draft),
		IsNew:      s.now().Sub(r.CreatedAt) < types.NewBadgeWindow,
	}
}

// Create makes an empty resume with the requested title.
func (s *ResumeService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateResumeRequest) (*types.ResumeView, error) {
	if err := req.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	d := types.NewEmptyResume(req.Title)
	d.Template.Theme = types.DefaultTheme

	r, err := s.store.CreateResume(ctx, userID, d)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	v := s.view(r)
	s.metrics.RecordResumeSaved(v.Completion)
	return v, nil
}

// List returns the user's resumes, most recently updated first.
func (s *ResumeService) List(ctx context.Context, userID uuid.UUID) (*types.ResumeList, error) {
	resumes, err := s.store.ListResumesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	out := &types.ResumeList{Resumes: make([]types.ResumeView, 0, len(resumes)), Count: len(resumes)}
	for i := range resumes {
		out.Resumes = append(out.Resumes, *s.view(&resumes[i]))
	}
	return out, nil
}

// Get returns one of the user's resumes.
func (s *ResumeService) Get(ctx context.Context, userID, id uuid.UUID) (*types.ResumeView, error) {
	r, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.view(r), nil
}

// Draft returns one of the user's resumes as an editor draft, hydrated over
// the wizard's starting draft.
func (s *ResumeService) Draft(ctx context.Context, userID, id uuid.UUID) (types.Draft, error) {
	r, err := s.load(ctx, userID, id)
	if err != nil {
		return types.Draft{}, err
	}
	return draft.Hydrate(draft.New(), r.Draft), nil
}

func (s *ResumeService) load(ctx context.Context, userID, id uuid.UUID) (*types.Resume, error) {
	r, err := s.store.GetResumeForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if r == nil {
		return nil, &ErrResumeNotFound{ID: id}
	}
	return r, nil
}

// Update applies a JSON patch body to one of the user's resumes. The body is
// checked against the resume schema before anything is written; only the
// fields of types.ResumePatch are taken from it. The merged draft is sanitized
// before it is stored.
func (s *ResumeService) Update(ctx context.Context, userID, id uuid.UUID, body []byte) (*types.ResumeView, error) {
	if err := schemas.ValidateResume(body); err != nil {
		return nil, err
	}
	var patch types.ResumePatch
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := patch.Validate(); err != nil {
		return nil, newValidationError(err)
	}

	existing, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	saved := draft.Sanitize(patch.ApplyTo(existing.Draft))
	if !types.Filled(saved.Title) {
		return nil, &ErrValidation{Field: "title", Message: "title must not be blank"}
	}
	updated, err := s.store.UpdateResume(ctx, id, userID, saved.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	if updated == nil {
		return nil, &ErrResumeNotFound{ID: id}
	}

	v := s.view(updated)
	s.metrics.RecordResumeSaved(v.Completion)
	return v, nil
}

// Delete removes one of the user's resumes together with its uploaded
// thumbnail and profile image.
func (s *ResumeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.load(ctx, userID, id)
	if err != nil {
		return err
	}
	deleted, err := s.store.DeleteResume(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if !deleted {
		return &ErrResumeNotFound{ID: id}
	}

	s.removeFile(existing.ThumbnailLink)
	s.removeFile(existing.ProfileInfo.ProfilePreviewURL)
	s.metrics.RecordResumeDeleted()
	return nil
}

// UploadImages stores new thumbnail and profile images for one of the user's
// resumes, links them into the record and removes the files they replace.
func (s *ResumeService) UploadImages(ctx context.Context, userID, id uuid.UUID, images []ImageUpload) (*types.UploadImagesResponse, error) {
	if s.files == nil {
		return nil, &ErrUnavailable{Feature: "image upload"}
	}
	if len(images) == 0 {
		return nil, &ErrValidation{Field: "images", Message: "thumbnail or profileImage is required"}
	}
	existing, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	d := existing.Draft.Clone()
	var stored, replaced []string
	for _, img := range images {
		link, err := s.files.Save(img.Field, img.Filename, img.Body, s.maxUploadBytes)
		if err != nil {
			s.metrics.RecordUpload(img.Field, "rejected")
			s.discard(stored)
			return nil, err
		}
		s.metrics.RecordUpload(img.Field, "stored")
		stored = append(stored, link)

		switch img.Field {
		case FieldThumbnail:
			replaced = append(replaced, d.ThumbnailLink)
			d.ThumbnailLink = link
		case FieldProfileImage:
			replaced = append(replaced, d.ProfileInfo.ProfilePreviewURL)
			d.ProfileInfo.ProfilePreviewURL = link
		default:
			s.discard(stored)
			return nil, &ErrValidation{Field: img.Field, Message: "unknown image field"}
		}
	}

	updated, err := s.store.UpdateResume(ctx, id, userID, d)
	if err != nil {
		s.discard(stored)
		return nil, fmt.Errorf("failed to link uploaded images: %w", err)
	}
	if updated == nil {
		s.discard(stored)
		return nil, &ErrResumeNotFound{ID: id}
	}
	s.discard(replaced)

	return &types.UploadImagesResponse{
		Message:           "Images uploaded successfully",
		ThumbnailLink:     updated.ThumbnailLink,
		ProfilePreviewURL: updated.ProfileInfo.ProfilePreviewURL,
	}, nil
}

func (s *ResumeService) discard(links []string) {
	for _, link := range links {
		s.removeFile(link)
	}
}

// removeFile deletes an uploaded file. Failures are logged; the record
// change they accompany has already happened.
func (s *ResumeService) removeFile(link string) {
	if s.files == nil || link == "" {
		return
	}
	if err := s.files.Remove(link); err != nil {
		log.Printf("[uploads] failed to remove %s: %v", link, err)
	}
}
