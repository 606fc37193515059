package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/api/shared"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/generation"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/platform/logger"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/redact"
)

// SiteHandler handles website generation HTTP requests.
type SiteHandler struct {
	generator generation.Generator
}

// NewSiteHandler creates a new SiteHandler over the given generator.
func NewSiteHandler(generator generation.Generator) *SiteHandler {
	return &SiteHandler{generator: generator}
}

// GenerateSite handles POST /api/generate requests.
func (h *SiteHandler) GenerateSite(w http.ResponseWriter, r *http.Request) {
	var req GenerateSiteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if req.Style == "" {
		req.Style = generation.DefaultStyle
	}

	// Per-request generation ID, independent of the trace ID, so retries of
	// the same client request are distinguishable in the logs.
	log := logger.FromContext(r.Context()).With("generation_id", uuid.NewString())
	log.Info("generating website",
		"style", req.Style,
		"prompt_length", len(req.Prompt))

	result, err := h.generator.GenerateSite(r.Context(), generation.SiteRequest{
		Prompt: req.Prompt,
		Style:  req.Style,
	})
	if err != nil {
		log.Error("website generation failed", "error", redact.Error(err))
		status, detail := MapGenerationError(err)
		shared.RespondWithError(w, r, status, detail)
		return
	}

	log.Info("website generated",
		"html_length", len(result.HTML),
		"css_length", len(result.CSS))

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateSiteResponse{
		HTML:    result.HTML,
		CSS:     result.CSS,
		Success: true,
		Message: "Website generated successfully",
	})
}

// Root handles GET / requests with a liveness descriptor.
func (h *SiteHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message: "AI Website Builder API",
		Status:  "running",
	})
}

// Health handles GET /health requests. It never consults external state.
func (h *SiteHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "healthy"})
}
