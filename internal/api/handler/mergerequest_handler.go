package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/service"
	"github.com/go-chi/chi/v5"
)

type MergeRequestHandler struct {
	mrService *service.MergeRequestService
	logger    *logger.Logger
}

func NewMergeRequestHandler(mrService *service.MergeRequestService, logger *logger.Logger) *MergeRequestHandler {
	return &MergeRequestHandler{
		mrService: mrService,
		logger:    logger.Component("handler/mergerequest"),
	}
}

func (h *MergeRequestHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/create", h.CreateMR)
	r.Post("/review", h.ReviewMR)
	r.Post("/merge", h.MergeMR)
	r.Get("/{mrID}", h.GetMR)
	r.Get("/{mrID}/reviews", h.ListReviews)

	return r
}

type CreateMRRequest struct {
	ProjectID    string `json:"project_id"`
	Title        string `json:"title"`
	SourceBranch string `json:"source_branch"`
	TargetBranch string `json:"target_branch"`
	Author       string `json:"author"`
	Description  string `json:"description"`
}

type MRResponse struct {
	MR *domain.MergeRequest `json:"mr"`
}

func (h *MergeRequestHandler) CreateMR(w http.ResponseWriter, r *http.Request) {
	var req CreateMRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ProjectID == "" || req.Title == "" {
		h.logger.Warn("missing required fields")
		http.Error(w, "project_id and title are required", http.StatusBadRequest)
		return
	}

	mr, err := h.mrService.CreateMR(r.Context(),
		req.ProjectID, req.Title, req.SourceBranch, req.TargetBranch,
		req.Author, req.Description)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, MRResponse{MR: mr}, h.logger)
}

func (h *MergeRequestHandler) GetMR(w http.ResponseWriter, r *http.Request) {
	mrID := chi.URLParam(r, "mrID")

	mr, err := h.mrService.GetMR(r.Context(), mrID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MRResponse{MR: mr}, h.logger)
}

type ReviewMRRequest struct {
	MRID     string `json:"mr_id"`
	Reviewer string `json:"reviewer"`
	Action   string `json:"action"`
	Comment  string `json:"comment"`
}

type ReviewMRResponse struct {
	Review *domain.Review `json:"review"`
}

func (h *MergeRequestHandler) ReviewMR(w http.ResponseWriter, r *http.Request) {
	var req ReviewMRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.MRID == "" || req.Reviewer == "" {
		h.logger.Warn("missing required fields")
		http.Error(w, "mr_id and reviewer are required", http.StatusBadRequest)
		return
	}

	review, err := h.mrService.ReviewMR(r.Context(),
		req.MRID, req.Reviewer, domain.ReviewAction(req.Action), req.Comment)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, ReviewMRResponse{Review: review}, h.logger)
}

type MergeMRRequest struct {
	MRID     string `json:"mr_id"`
	MergedBy string `json:"merged_by"`
	Squash   bool   `json:"squash"`
}

func (h *MergeRequestHandler) MergeMR(w http.ResponseWriter, r *http.Request) {
	var req MergeMRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.MRID == "" {
		h.logger.Warn("mr_id is required")
		http.Error(w, "mr_id is required", http.StatusBadRequest)
		return
	}

	mr, err := h.mrService.MergeMR(r.Context(), req.MRID, req.MergedBy, req.Squash)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MRResponse{MR: mr}, h.logger)
}

type ListReviewsResponse struct {
	Reviews []*domain.Review `json:"reviews"`
}

func (h *MergeRequestHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	mrID := chi.URLParam(r, "mrID")

	reviews, err := h.mrService.ListReviews(r.Context(), mrID)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ListReviewsResponse{Reviews: reviews}, h.logger)
}
