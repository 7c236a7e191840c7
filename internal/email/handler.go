package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/joao-fontenele/orderflow-email-confirmation/internal/render"
)

var tracer = otel.Tracer("email")

// Renderer turns an order payload into a confirmation document.
type Renderer interface {
	Render(order any) (string, error)
}

type Handler struct {
	renderer      Renderer
	metrics       *Metrics
	logger        *slog.Logger
	maxBodyBytes  int64
	logContent    bool
	newInvocation func() string
}

type HandlerOption func(*Handler)

// WithMaxBodyBytes limits how much of the request body is read.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		h.maxBodyBytes = n
	}
}

// WithContentLogging controls whether the rendered document is written to
// the log. It is on by default.
func WithContentLogging(enabled bool) HandlerOption {
	return func(h *Handler) {
		h.logContent = enabled
	}
}

func NewHandler(renderer Renderer, metrics *Metrics, logger *slog.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		renderer:      renderer,
		metrics:       metrics,
		logger:        logger,
		maxBodyBytes:  1 << 20,
		logContent:    true,
		newInvocation: uuid.NewString,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HandleConfirm validates an order confirmation request, renders the
// confirmation document and logs it. The document is never returned.
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("invocation_id", h.newInvocation())

	req, err := Validate(r, h.maxBodyBytes)
	if err != nil {
		logger.InfoContext(ctx, "confirmation request rejected", "method", r.Method, "reason", err)
		h.respond(ctx, w, err)
		return
	}

	logger.InfoContext(ctx, "order confirmation request received", "email", req.Email)

	doc, err := h.render(ctx, req.Order)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render confirmation email", "email", req.Email, "error", err)
		h.respond(ctx, w, fmt.Errorf("%w: %w", ErrTemplateRender, err))
		return
	}

	if h.logContent {
		logger.InfoContext(ctx, "generated confirmation email", "email", req.Email, "content", doc)
		logger.DebugContext(ctx, "confirmation plain text", "email", req.Email, "text", render.PlainText(doc))
	} else {
		logger.InfoContext(ctx, "generated confirmation email", "email", req.Email, "content_bytes", len(doc))
	}

	h.respond(ctx, w, nil)
}

func (h *Handler) render(ctx context.Context, order any) (string, error) {
	ctx, span := tracer.Start(ctx, "render confirmation")
	defer span.End()

	start := time.Now()
	doc, err := h.renderer.Render(order)
	h.metrics.recordRender(ctx, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return "", err
	}

	span.SetAttributes(attribute.Int("email.document.size", len(doc)))
	return doc, nil
}

func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, err error) {
	h.metrics.recordOutcome(ctx, err)
	h.writeResponse(w, BuildResponse(err))
}
