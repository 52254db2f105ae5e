// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/princejain-2004/RESUME-EXPERT/internal/rendering"
	"github.com/princejain-2004/RESUME-EXPERT/internal/schemas"
	"github.com/princejain-2004/RESUME-EXPERT/internal/uploads"
	"github.com/princejain-2004/RESUME-EXPERT/internal/wizard"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrResumeNotFound indicates the resume does not exist or belongs to
// another user. The two cases are not distinguished.
type ErrResumeNotFound struct {
	ID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnavailable indicates an optional backend is not configured.
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not available", e.Feature)
}

// newValidationError converts a validator failure into an ErrValidation
// describing its first failing field.
func newValidationError(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return &ErrValidation{Field: ve.Field(), Message: fmt.Sprintf("failed on '%s'", ve.Tag())}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		mismatch    *ErrPasswordMismatch
		userMissing *ErrUserNotFound
		resMissing  *ErrResumeNotFound
		invalid     *ErrValidation
		unavailable *ErrUnavailable
		schemaErr   *schemas.ValidationError
		docErr      *schemas.DocumentError
		uploadErr   *uploads.UploadError
		stepErr     *wizard.UnknownStepError
		renderErr   *rendering.RenderError
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &mismatch):
		return http.StatusUnauthorized
	case errors.As(err, &userMissing), errors.As(err, &resMissing):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &schemaErr), errors.As(err, &docErr),
		errors.As(err, &uploadErr), errors.As(err, &stepErr):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &renderErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
