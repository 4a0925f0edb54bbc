package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/service"
	"github.com/go-chi/chi/v5"
)

type PipelineHandler struct {
	pipelineService *service.PipelineService
	logger          *logger.Logger
}

func NewPipelineHandler(pipelineService *service.PipelineService, logger *logger.Logger) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
		logger:          logger.Component("handler/pipeline"),
	}
}

func (h *PipelineHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/create", h.CreatePipeline)
	r.Post("/update", h.UpdatePipeline)
	r.Get("/{pipelineID}", h.GetPipeline)

	return r
}

type CreatePipelineRequest struct {
	ProjectID   string `json:"project_id"`
	Ref         string `json:"ref"`
	SHA         string `json:"sha"`
	TriggeredBy string `json:"triggered_by"`
}

type PipelineResponse struct {
	Pipeline *domain.Pipeline `json:"pipeline"`
}

func (h *PipelineHandler) CreatePipeline(w http.ResponseWriter, r *http.Request) {
	var req CreatePipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ProjectID == "" || req.SHA == "" {
		h.logger.Warn("missing required fields")
		http.Error(w, "project_id and sha are required", http.StatusBadRequest)
		return
	}

	pipeline, err := h.pipelineService.CreatePipeline(r.Context(),
		req.ProjectID, req.Ref, req.SHA, req.TriggeredBy)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, PipelineResponse{Pipeline: pipeline}, h.logger)
}

func (h *PipelineHandler) GetPipeline(w http.ResponseWriter, r *http.Request) {
	pipelineID := chi.URLParam(r, "pipelineID")

	pipeline, err := h.pipelineService.GetPipeline(r.Context(), pipelineID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, PipelineResponse{Pipeline: pipeline}, h.logger)
}

type UpdatePipelineRequest struct {
	PipelineID string   `json:"pipeline_id"`
	Status     string   `json:"status"`
	Stages     []string `json:"stages"`
	DurationS  *int     `json:"duration_s"`
}

func (h *PipelineHandler) UpdatePipeline(w http.ResponseWriter, r *http.Request) {
	var req UpdatePipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.PipelineID == "" || req.Status == "" {
		h.logger.Warn("missing required fields")
		http.Error(w, "pipeline_id and status are required", http.StatusBadRequest)
		return
	}

	err := h.pipelineService.UpdatePipeline(r.Context(),
		req.PipelineID, domain.PipelineStatus(req.Status), req.Stages, req.DurationS)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	pipeline, err := h.pipelineService.GetPipeline(r.Context(), req.PipelineID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, PipelineResponse{Pipeline: pipeline}, h.logger)
}
