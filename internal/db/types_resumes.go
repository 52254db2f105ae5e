package db

import (
	"encoding/json"
	"fmt"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// Document is the JSONB form of a resume draft. The title is also kept in its
// own column for listing.
type Document types.Draft

// encodeDocument serializes a draft for the document column.
func encodeDocument(d types.Draft) ([]byte, error) {
	data, err := json.Marshal(Document(d.Normalized()))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume document: %w", err)
	}
	return data, nil
}

// decodeDocument restores a draft from the document column. The title column
// wins over any title stored in the document.
func decodeDocument(data []byte, title string) (types.Draft, error) {
	var doc Document
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return types.Draft{}, fmt.Errorf("failed to unmarshal resume document: %w", err)
		}
	}
	d := types.Draft(doc).Normalized()
	d.Title = title
	return d, nil
}
