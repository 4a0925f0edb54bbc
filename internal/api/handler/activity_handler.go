package handler

import (
	"net/http"
	"strconv"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/service"
	"github.com/go-chi/chi/v5"
)

type ActivityHandler struct {
	activityService *service.ActivityService
	logger          *logger.Logger
}

func NewActivityHandler(activityService *service.ActivityService, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger.Component("handler/activity"),
	}
}

func (h *ActivityHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Feed)

	return r
}

func (h *ActivityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	namespace := r.URL.Query().Get("namespace")

	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("invalid n parameter", "value", raw)
			http.Error(w, "n must be an integer", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	feed, err := h.activityService.Feed(r.Context(), namespace, n)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, feed, h.logger)
}
