package email

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/joao-fontenele/orderflow-email-confirmation/internal/domain"
)

// ValidRequest is a confirmation request that passed validation. Order is the
// untouched order payload, an empty mapping when the caller sent none.
type ValidRequest struct {
	Email string
	Order any
}

// Validate checks the method and body of a confirmation request. Rejections
// wrap ErrMethodNotAllowed or ErrMissingField.
func Validate(r *http.Request, maxBodyBytes int64) (ValidRequest, error) {
	if r.Method != http.MethodPost {
		return ValidRequest{}, fmt.Errorf("%w: %s", ErrMethodNotAllowed, r.Method)
	}

	if r.Body == nil || r.Body == http.NoBody {
		return ValidRequest{}, fmt.Errorf("%w: empty body", ErrMissingField)
	}

	body := r.Body
	if maxBodyBytes > 0 {
		body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	}

	payload, err := domain.DecodeObject(body)
	if err != nil {
		return ValidRequest{}, fmt.Errorf("%w: %w", ErrMissingField, err)
	}

	raw, ok := payload["email"]
	if !ok {
		return ValidRequest{}, fmt.Errorf("%w: email", ErrMissingField)
	}
	email, ok := raw.(string)
	if !ok {
		return ValidRequest{}, fmt.Errorf("%w: email must be a string, got %T", ErrMissingField, raw)
	}
	if strings.TrimSpace(email) == "" {
		return ValidRequest{}, fmt.Errorf("%w: email is empty", ErrMissingField)
	}

	order, ok := payload["order"]
	if !ok || order == nil {
		order = map[string]any{}
	}

	return ValidRequest{Email: email, Order: order}, nil
}
