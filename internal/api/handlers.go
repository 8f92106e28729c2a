package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"deckflow/pkg/buildinfo"
	"deckflow/pkg/pipeline"
	"deckflow/pkg/theme"
)

// Handler holds API route handlers.
type Handler struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewHandler creates a new Handler.
func NewHandler(runner *pipeline.Runner, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{runner: runner, logger: logger}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
	})
}

// Themes handles GET /themes.
func (h *Handler) Themes(w http.ResponseWriter, _ *http.Request) {
	names := theme.Names()
	out := ThemesResponse{Themes: make([]ThemeDTO, 0, len(names))}
	for _, name := range names {
		t := theme.Get(name)
		out.Themes = append(out.Themes, ThemeDTO{
			Name:       t.Name,
			Background: t.Background.Hex(),
			Accent:     t.Accent.Hex(),
			FontTitle:  t.FontTitle,
			FontBody:   t.FontBody,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Generate handles POST /generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	result, err := h.runner.Execute(r.Context(), req.options())
	if err != nil {
		h.logger.Error("generate failed", "topic", req.Topic, "err", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(result))
}
