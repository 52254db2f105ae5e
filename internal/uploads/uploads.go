// Package uploads stores resume images on local disk and serves them back.
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// URLPrefix is the path under which stored files are served.
const URLPrefix = "/uploads/"

// allowedTypes are the image types a resume may carry.
var allowedTypes = []string{"image/jpeg", "image/png"}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// UploadError reports a rejected file.
type UploadError struct {
	Field  string
	Reason string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s rejected: %s", e.Field, e.Reason)
}

// Store keeps files in one directory.
type Store struct {
	dir     string
	baseURL string
	now     func() time.Time
}

// NewStore creates dir if needed. Links returned by Save are baseURL +
// URLPrefix + filename; an empty baseURL gives host-relative links.
func NewStore(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save stores an image read from r under "<unix millis>-<name>" and returns
// its public link. The content, not the client's declared type, decides
// whether the file is a JPEG or PNG. Files larger than maxBytes are rejected.
func (s *Store) Save(field, name string, r io.Reader, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload %s: %w", field, err)
	}
	if int64(len(data)) > maxBytes {
		return "", &UploadError{Field: field, Reason: fmt.Sprintf("file exceeds %d bytes", maxBytes)}
	}
	if len(data) == 0 {
		return "", &UploadError{Field: field, Reason: "file is empty"}
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedTypes...) {
		return "", &UploadError{Field: field, Reason: "only jpeg, jpg and png files are allowed, got " + mt.String()}
	}

	filename := fmt.Sprintf("%d-%s", s.now().UnixMilli(), cleanName(name, mt.Extension()))
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", field, err)
	}
	return s.baseURL + URLPrefix + filename, nil
}

// SaveBytes is Save over an in-memory file.
func (s *Store) SaveBytes(field, name string, data []byte, maxBytes int64) (string, error) {
	return s.Save(field, name, bytes.NewReader(data), maxBytes)
}

// Remove deletes the file a link points to. Links outside this store and
// files already gone are ignored.
func (s *Store) Remove(link string) error {
	p, ok := s.pathFor(link)
	if !ok {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", p, err)
	}
	return nil
}

// Owns reports whether link points into this store.
func (s *Store) Owns(link string) bool {
	_, ok := s.pathFor(link)
	return ok
}

// pathFor maps a link produced by Save back to its file.
func (s *Store) pathFor(link string) (string, bool) {
	if link == "" {
		return "", false
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	if s.baseURL != "" && u.Host != "" {
		base, err := url.Parse(s.baseURL)
		if err != nil || base.Host != u.Host {
			return "", false
		}
	}
	if !strings.HasPrefix(u.Path, URLPrefix) {
		return "", false
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name != strings.TrimPrefix(u.Path, URLPrefix) {
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

// Handler serves stored files under URLPrefix.
func (s *Store) Handler() http.Handler {
	return http.StripPrefix(URLPrefix, http.FileServer(http.Dir(s.dir)))
}

// cleanName reduces a client file name to a safe base name with the detected
// extension.
func cleanName(name, ext string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Trim(unsafeName.ReplaceAllString(base, "_"), "._")
	if base == "" {
		base = "image"
	}
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return base + ext
}
