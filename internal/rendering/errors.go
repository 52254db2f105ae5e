// Package rendering turns resume drafts into HTML, plain text and PDF.
package rendering

import (
	"fmt"
	"strings"
)

// Format names an output the package renders.
type Format string

// Output formats
const (
	FormatHTML Format = "html"
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatText, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want html, text or pdf)", s)
	}
}

// TemplateError reports a resume template that failed to parse or execute.
// Template is the file name inside the embedded template set.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("resume template %s: %s", e.Template, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError reports a failure producing one output format after the
// template ran, such as a browser print or a text extraction.
type RenderError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	prefix := "render"
	if e.Format != "" {
		prefix = "render " + string(e.Format)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
