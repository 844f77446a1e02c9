// Package server provides the HTTP REST API for career-mentor.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-mentor/internal/jobs"
	"github.com/jonathan/career-mentor/internal/profile"
	"github.com/jonathan/career-mentor/internal/rendering"
	"github.com/jonathan/career-mentor/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		fieldErr      *types.FieldError
		renderErr     *rendering.RenderError
		invalid       validator.ValidationErrors
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr), errors.As(err, &fieldErr), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &renderErr) && renderErr.Cause == nil:
		return http.StatusBadRequest
	case errors.Is(err, profile.ErrCertificateNotFound),
		errors.Is(err, jobs.ErrJobNotFound),
		errors.Is(err, jobs.ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, jobs.ErrJobClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage renders err for an API client. Validator errors are flattened into
// "field: rule" pairs; internal errors are not echoed.
func errorMessage(err error) string {
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		parts := make([]string, 0, len(invalid))
		for _, fe := range invalid {
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), rule))
		}
		return "validation failed: " + strings.Join(parts, "; ")
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
