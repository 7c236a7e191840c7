package email

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRouter(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "# metrics")
	})
	router := NewRouter(newTestHandler(t, &fakeRenderer{doc: "ok"}, io.Discard), metrics)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "GET root", method: http.MethodGet, path: "/", wantStatus: http.StatusMethodNotAllowed, wantBody: "Method not allowed"},
		{name: "DELETE root", method: http.MethodDelete, path: "/", wantStatus: http.StatusMethodNotAllowed, wantBody: "Method not allowed"},
		{name: "POST root", method: http.MethodPost, path: "/", body: `{"email":"a@b.com"}`, wantStatus: http.StatusOK, wantBody: "{}"},
		{name: "POST root without email", method: http.MethodPost, path: "/", body: `{}`, wantStatus: http.StatusBadRequest, wantBody: "Invalid request: 'email' required"},
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "POST health", method: http.MethodPost, path: "/healthz", body: `{"email":"a@b.com"}`, wantStatus: http.StatusMethodNotAllowed, wantBody: "Method not allowed"},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "# metrics"},
		{name: "unknown path", method: http.MethodPost, path: "/send", body: `{"email":"a@b.com"}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantBody != "" && strings.TrimSpace(rec.Body.String()) != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestNewRouter_WithoutMetrics(t *testing.T) {
	router := NewRouter(newTestHandler(t, &fakeRenderer{}, io.Discard), nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

type brokenResponseWriter struct {
	header http.Header
}

func (w *brokenResponseWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *brokenResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func (w *brokenResponseWriter) WriteHeader(int) {}

func TestHandler_HealthLogsWriteFailure(t *testing.T) {
	var logs bytes.Buffer
	handler := newTestHandler(t, &fakeRenderer{}, &logs)

	handler.handleHealth(&brokenResponseWriter{}, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	failed := findLog(decodeLogs(t, &logs), "failed to encode health response")
	if failed == nil {
		t.Fatal("expected encode failure to be logged")
	}
	if failed["error"] != "connection reset" {
		t.Errorf("expected write error in log, got %v", failed["error"])
	}
}
