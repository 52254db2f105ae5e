package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/princejain-2004/RESUME-EXPERT/internal/rendering"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// Exporter prints a resume to PDF.
type Exporter interface {
	Export(ctx context.Context, d types.Draft) ([]byte, error)
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// downloadName turns a resume title into a safe attachment filename.
func downloadName(title, ext string) string {
	name := strings.Trim(unsafeFilename.ReplaceAllString(strings.TrimSpace(title), "_"), "._")
	if name == "" {
		name = "resume"
	}
	return name + ext
}

// handleExportPDF renders a resume and returns it as a PDF download
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requestIDs(w, r, true)
	if !ok {
		return
	}
	if s.exporter == nil {
		writeError(w, &ErrUnavailable{Feature: "PDF export"})
		return
	}
	view, err := s.resumeService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	pdf, err := s.exporter.Export(r.Context(), view.Draft)
	s.metrics.RecordExport(time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("[export] resume %s exported (%d bytes)", id, len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, downloadName(view.Title, ".pdf")))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("[export] failed to write PDF: %v", err)
	}
}

// handlePreviewHTML returns the rendered resume document
func (s *Server) handlePreviewHTML(w http.ResponseWriter, r *http.Request) {
	s.preview(w, r, "text/html; charset=utf-8", rendering.RenderHTML)
}

// handlePreviewText returns a plain-text rendition of the resume
func (s *Server) handlePreviewText(w http.ResponseWriter, r *http.Request) {
	s.preview(w, r, "text/plain; charset=utf-8", rendering.RenderText)
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request, contentType string, render func(types.Draft) (string, error)) {
	userID, id, ok := requestIDs(w, r, true)
	if !ok {
		return
	}
	view, err := s.resumeService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := render(view.Draft)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out)); err != nil {
		log.Printf("[export] failed to write preview: %v", err)
	}
}
