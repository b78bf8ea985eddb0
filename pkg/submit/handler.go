package submit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/mailform/pkg/form"
	"github.com/dmitrymomot/mailform/pkg/mailer"
)

// ErrUnsupportedContentType is returned when a request body is neither
// JSON nor form-encoded.
var ErrUnsupportedContentType = errors.New("submit: unsupported content type")

// maxBodySize caps request bodies at 1MB; form submissions are small.
const maxBodySize = 1 << 20

// Handler exposes registered forms over HTTP. Each form is served at
// POST /forms/{form}: the request body is decoded into a field-value map,
// run through the form's pipeline, and answered with a JSON envelope.
// Valid submissions are optionally dispatched as email.
type Handler struct {
	forms     map[string]*form.Form
	sender    mailer.EmailSender
	composers map[string]*mailer.Composer
	log       *slog.Logger
	messages  bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithMailer wires an email transport and a per-form composer map. Forms
// without a composer are processed but never mailed.
func WithMailer(sender mailer.EmailSender, composers map[string]*mailer.Composer) Option {
	return func(h *Handler) {
		h.sender = sender
		h.composers = composers
	}
}

// WithLogger attaches a logger for request outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithInterpolatedMessages serializes validation errors as interpolated
// display strings instead of {code, message, context, field} records.
func WithInterpolatedMessages() Option {
	return func(h *Handler) { h.messages = true }
}

// NewHandler creates a Handler serving the given forms.
func NewHandler(forms map[string]*form.Form, opts ...Option) *Handler {
	h := &Handler{
		forms: forms,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts the submission endpoint on a fresh chi router.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/forms/{form}", h.handleSubmit)
	return r
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "form")
	f, ok := h.forms[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"status": "not_found"})
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"status": "bad_request"})
		return
	}

	result := f.Process(input)
	if !result.Valid() {
		h.log.InfoContext(r.Context(), "submission rejected", "form", name, "fields", len(result.Errors()))
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"status": "invalid",
			"errors": h.serializeErrors(result),
		})
		return
	}

	id := uuid.NewString()

	if composer, ok := h.composers[name]; ok && h.sender != nil {
		params := composer.Compose(f, result)
		if err := h.sender.SendEmail(r.Context(), params); err != nil {
			h.log.ErrorContext(r.Context(), "mail dispatch failed", "form", name, "submission_id", id, "error", err)
			writeJSON(w, http.StatusBadGateway, map[string]any{"status": "send_failed"})
			return
		}
	}

	h.log.InfoContext(r.Context(), "submission accepted", "form", name, "submission_id", id)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"submission_id": id,
		"data":          result.Data(),
	})
}

// serializeErrors renders the error map either as full records or as
// interpolated message strings, selectable at handler construction.
func (h *Handler) serializeErrors(result form.Result) any {
	if !h.messages {
		return result.Errors()
	}
	out := make(map[string][]string)
	for name := range result.Errors() {
		out[name] = result.Messages(name)
	}
	return out
}

// decodeInput turns a request body into the raw field-value map the
// pipeline consumes. JSON objects keep their decoded value types; form
// encodings submit every value as a string, first value wins for
// multi-value keys.
func decodeInput(r *http.Request) (map[string]any, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)

	contentType := r.Header.Get("Content-Type")
	mediaType := contentType
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			mediaType = mt
		}
	}

	switch mediaType {
	case "application/json", "":
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		input := make(map[string]any)
		if len(raw) == 0 {
			return input, nil
		}
		if err := json.Unmarshal(raw, &input); err != nil {
			return nil, err
		}
		return input, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return formValues(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			return nil, err
		}
		return formValues(r.PostForm), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
}

func formValues(values map[string][]string) map[string]any {
	input := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			input[key] = vals[0]
		}
	}
	return input
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
