// Package schemas provides JSON Schema validation of resume documents.
package schemas

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ResumeSchemaName identifies the embedded resume schema in errors.
const ResumeSchemaName = "resume.schema.json"

//go:embed resume.schema.json
var resumeSchema string

var (
	resumeOnce     sync.Once
	resumeCompiled *gojsonschema.Schema
	resumeErr      error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// DocumentError reports a document that is not well-formed JSON.
type DocumentError struct {
	Source string
	Cause  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid JSON document %s: %v", e.Source, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// ResumeSchema returns the compiled resume schema. It is compiled once.
func ResumeSchema() (*gojsonschema.Schema, error) {
	resumeOnce.Do(func() {
		resumeCompiled, resumeErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchema))
		if resumeErr != nil {
			resumeErr = &SchemaLoadError{Path: ResumeSchemaName, Message: "failed to compile", Cause: resumeErr}
		}
	})
	return resumeCompiled, resumeErr
}

// ValidateResume validates a resume document, full or partial, against the
// embedded schema. No field is required; present fields must be well-typed.
func ValidateResume(doc []byte) error {
	schema, err := ResumeSchema()
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &DocumentError{Source: "(request body)", Cause: err}
	}
	return resultError(result)
}

// ValidateResumeFile validates the resume document stored at path.
func ValidateResumeFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("JSON file not found: %s", absPath)
		}
		return fmt.Errorf("failed to read %s: %w", absPath, err)
	}
	err = ValidateResume(data)
	var docErr *DocumentError
	if errors.As(err, &docErr) {
		docErr.Source = absPath
	}
	return err
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return resultError(result)
}

// resultError converts a failed result into a ValidationError.
func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
