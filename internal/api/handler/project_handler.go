package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *logger.Logger
}

func NewProjectHandler(projectService *service.ProjectService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger.Component("handler/project"),
	}
}

func (h *ProjectHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/create", h.CreateProject)
	r.Get("/search", h.SearchProjects)
	r.Get("/{projectID}", h.GetProject)
	r.Get("/{projectID}/stats", h.ProjectStats)
	r.Post("/{projectID}/push", h.RecordPush)

	return r
}

type CreateProjectRequest struct {
	Namespace     string `json:"namespace"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
}

type ProjectResponse struct {
	Project *domain.Project `json:"project"`
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Namespace == "" || req.Name == "" {
		h.logger.Warn("missing required fields")
		http.Error(w, "namespace and name are required", http.StatusBadRequest)
		return
	}

	project, err := h.projectService.CreateProject(r.Context(),
		req.Namespace, req.Name, req.Description,
		domain.Visibility(req.Visibility), req.DefaultBranch)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, ProjectResponse{Project: project}, h.logger)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	project, err := h.projectService.GetProject(r.Context(), projectID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: project}, h.logger)
}

type SearchProjectsResponse struct {
	Projects []*domain.Project `json:"projects"`
}

func (h *ProjectHandler) SearchProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	visibility := r.URL.Query().Get("visibility")

	projects, err := h.projectService.SearchProjects(r.Context(), query, domain.Visibility(visibility))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SearchProjectsResponse{Projects: projects}, h.logger)
}

func (h *ProjectHandler) ProjectStats(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	stats, err := h.projectService.ProjectStats(r.Context(), projectID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats, h.logger)
}

func (h *ProjectHandler) RecordPush(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	if err := h.projectService.RecordPush(r.Context(), projectID); err != nil {
		WriteError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
