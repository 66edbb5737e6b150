package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates every style at the default length.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	h.generate(w, req)
}

// HandleGenerateQuery handles GET /api/v1/generate?length=N&style=S&hash=true.
// A length that is not a number is ignored and the default applies.
func (h *GeneratorHandler) HandleGenerateQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := model.GenerateRequest{
		Length: service.ParseLength(q.Get("length")),
	}
	for _, s := range q["style"] {
		req.Styles = append(req.Styles, model.Style(s))
	}
	req.Hash, _ = strconv.ParseBool(q.Get("hash"))

	h.generate(w, req)
}

func (h *GeneratorHandler) generate(w http.ResponseWriter, req model.GenerateRequest) {
	resp, err := h.service.Generate(req)
	if err != nil {
		var lerr *crypto.LengthError
		switch {
		case errors.As(err, &lerr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  lerr.Error(),
				"length": lerr.Length,
			})
		case errors.Is(err, service.ErrUnknownStyle):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("password generation failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
