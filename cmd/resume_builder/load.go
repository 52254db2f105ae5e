package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/princejain-2004/RESUME-EXPERT/internal/schemas"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// loadDraft reads a resume document, checks it against the resume schema and
// decodes it. Missing collections come back empty.
func loadDraft(path string) (types.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Draft{}, fmt.Errorf("resume file not found: %s", path)
		}
		return types.Draft{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.ValidateResume(data); err != nil {
		var docErr *schemas.DocumentError
		if errors.As(err, &docErr) {
			docErr.Source = path
		}
		return types.Draft{}, fmt.Errorf("%s: %w", path, err)
	}

	var d types.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return types.Draft{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return d.Normalized(), nil
}
