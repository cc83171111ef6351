// Package server provides the HTTP REST API for the CV generator.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/cv-generator/internal/ingestion"
	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/jonathan/cv-generator/internal/schemas"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *schemas.ValidationError:
		return http.StatusBadRequest
	case *ingestion.ExtractionError:
		return http.StatusBadRequest
	case *rendering.TemplateError:
		return http.StatusBadRequest
	case *rendering.RenderError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
