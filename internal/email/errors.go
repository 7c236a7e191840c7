package email

import (
	"errors"
	"net/http"
)

var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrMissingField     = errors.New("missing required field")
	ErrTemplateRender   = errors.New("template render failed")
)

// Kind names the outcome class of err for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "rendered"

	case errors.Is(err, ErrMethodNotAllowed):
		return "method_not_allowed"

	case errors.Is(err, ErrMissingField):
		return "invalid_request"

	default:
		return "render_failed"
	}
}

// HTTPStatus maps err to the status code returned to the caller.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed

	case errors.Is(err, ErrMissingField):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
