package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-mentor/internal/jobs"
	"github.com/jonathan/career-mentor/internal/profile"
	"github.com/jonathan/career-mentor/internal/rendering"
	"github.com/jonathan/career-mentor/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "message", Message: "is required"}
	assert.Equal(t, "validation error: message - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	_, formatErr := rendering.ParseFormat("pdf")
	certErr := (&types.CertificateInput{}).Validate()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"ErrValidation", &ErrValidation{Field: "f", Message: "m"}, http.StatusBadRequest},
		{"FieldError", &types.FieldError{Field: "grade", Message: "is required"}, http.StatusBadRequest},
		{"validator errors", certErr, http.StatusBadRequest},
		{"bad export format", formatErr, http.StatusBadRequest},
		{"render failure", &rendering.RenderError{Message: "x", Cause: errors.New("boom")}, http.StatusInternalServerError},
		{"certificate not found", fmt.Errorf("delete: %w", profile.ErrCertificateNotFound), http.StatusNotFound},
		{"job not found", jobs.ErrJobNotFound, http.StatusNotFound},
		{"application not found", jobs.ErrApplicationNotFound, http.StatusNotFound},
		{"job closed", jobs.ErrJobClosed, http.StatusConflict},
		{"generic error", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	certErr := (&types.CertificateInput{Issuer: "Coursera", IssueDate: "2024-01"}).Validate()
	assert.Equal(t, "validation failed: Title: failed required", errorMessage(certErr))

	assert.Equal(t, "internal server error", errorMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "job not found", errorMessage(jobs.ErrJobNotFound))
}
