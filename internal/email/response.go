package email

import (
	"io"
	"net/http"
)

const (
	bodyMethodNotAllowed = "Method not allowed"
	bodyInvalidRequest   = "Invalid request: 'email' required"
	bodyRenderFailed     = "Error preparing confirmation email"
	bodyAccepted         = "{}"
)

// Response is the status, content type and body sent back for an outcome.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// BuildResponse maps a pipeline outcome to its fixed HTTP response. Error
// details never reach the body.
func BuildResponse(err error) Response {
	status := HTTPStatus(err)

	switch status {
	case http.StatusOK:
		return Response{Status: status, ContentType: "application/json", Body: bodyAccepted}
	case http.StatusMethodNotAllowed:
		return Response{Status: status, ContentType: "text/plain; charset=utf-8", Body: bodyMethodNotAllowed}
	case http.StatusBadRequest:
		return Response{Status: status, ContentType: "text/plain; charset=utf-8", Body: bodyInvalidRequest}
	default:
		return Response{Status: http.StatusInternalServerError, ContentType: "text/plain; charset=utf-8", Body: bodyRenderFailed}
	}
}

func (h *Handler) writeResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", resp.ContentType)
	if resp.Status == http.StatusMethodNotAllowed {
		w.Header().Set("Allow", http.MethodPost)
	}
	w.WriteHeader(resp.Status)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
