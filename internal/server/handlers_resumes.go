package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/princejain-2004/RESUME-EXPERT/internal/server/middleware"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// requestIDs returns the authenticated user and, when the route has one, the
// {id} path value. Failures have already been written to w.
func requestIDs(w http.ResponseWriter, r *http.Request, needID bool) (userID, id uuid.UUID, ok bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	if !needID {
		return userID, uuid.Nil, true
	}
	id, err = uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid resume ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}

// handleCreateResume creates an empty resume for the caller
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIDs(w, r, false)
	if !ok {
		return
	}
	var req types.CreateResumeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	view, err := s.resumeService.Create(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// handleListResumes lists the caller's resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requestIDs(w, r, false)
	if !ok {
		return
	}
	list, err := s.resumeService.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleGetResume returns one resume
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestIDs(w, r, true)
	if !ok {
		return
	}
	view, err := s.resumeService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleGetResumeDraft returns a resume hydrated for the editor
func (s *Server) handleGetResumeDraft(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestIDs(w, r, true)
	if !ok {
		return
	}
	d, err := s.resumeService.Draft(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// handleUpdateResume applies a partial update
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestIDs(w, r, true)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		writeErrorMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	view, err := s.resumeService.Update(r.Context(), userID, id, body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleDeleteResume deletes a resume and its images
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestIDs(w, r, true)
	if !ok {
		return
	}
	if err := s.resumeService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Resume deleted successfully"})
}

// handleUploadImages accepts multipart thumbnail and profileImage files
func (s *Server) handleUploadImages(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestIDs(w, r, true)
	if !ok {
		return
	}

	// Two files plus form overhead
	limit := 2*s.cfg.MaxUploadBytes() + (1 << 20)
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorMessage(w, http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		writeErrorMessage(w, http.StatusBadRequest, "Expected multipart form data")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	var images []ImageUpload
	for _, field := range []string{FieldThumbnail, FieldProfileImage} {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid file in "+field)
			return
		}
		defer func() { _ = file.Close() }()
		images = append(images, ImageUpload{Field: field, Filename: header.Filename, Body: file})
	}

	resp, err := s.resumeService.UploadImages(r.Context(), userID, id, images)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
