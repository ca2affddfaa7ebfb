package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"courseforge/internal/api/v1/dto"
	"courseforge/internal/curriculum"
	"courseforge/internal/service"

	"github.com/rs/zerolog"
)

// CurriculumHandler handles curriculum generation endpoints
type CurriculumHandler struct {
	curriculumService service.CurriculumService
	logger            zerolog.Logger
}

// NewCurriculumHandler creates a new CurriculumHandler
func NewCurriculumHandler(curriculumService service.CurriculumService, logger zerolog.Logger) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService, logger: logger}
}

// RegisterRoutes mounts curriculum routes
func (h *CurriculumHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/generate", http.HandlerFunc(h.generateCurriculum))
}

// generateCurriculum runs the full generation pipeline for one request:
// validate, render the prompt, call the model once, sanitize and parse.
func (h *CurriculumHandler) generateCurriculum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req dto.GenerateCurriculumDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.GenerateErrorDTO{Error: "Invalid JSON payload"})
		return
	}

	validated, err := curriculum.ValidateRequest(curriculum.RequestInput{
		Topic:          req.Topic,
		ReadingLevel:   req.ReadingLevel,
		Age:            string(req.Age),
		Language:       req.Language,
		PriorKnowledge: req.PriorKnowledge,
		LearningStyle:  req.LearningStyle,
	})
	if err != nil {
		var rerr *curriculum.RequestError
		if errors.As(err, &rerr) && !rerr.Missing {
			writeJSON(w, http.StatusBadRequest, dto.GenerateErrorDTO{Error: "Invalid " + rerr.Field})
			return
		}
		writeJSON(w, http.StatusBadRequest, dto.GenerateErrorDTO{Error: "Missing required fields"})
		return
	}

	cur, err := h.curriculumService.Generate(r.Context(), validated)
	if err != nil {
		var perr *curriculum.ParseError
		switch {
		case errors.Is(err, service.ErrAPIKeyMissing):
			writeJSON(w, http.StatusInternalServerError, dto.GenerateErrorDTO{Error: "API key not configured"})
		case errors.As(err, &perr):
			writeJSON(w, http.StatusInternalServerError, dto.GenerateErrorDTO{Error: "Invalid AI JSON output"})
		case errors.Is(err, curriculum.ErrInvalidStructure):
			writeJSON(w, http.StatusInternalServerError, dto.GenerateErrorDTO{Error: "Invalid curriculum structure"})
		default:
			h.logger.Error().Err(err).Msg("Curriculum generation failed")
			writeJSON(w, http.StatusInternalServerError, dto.GenerateErrorDTO{Error: "Failed to generate curriculum"})
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.CurriculumResponseDTO{Curriculum: cur})
}
