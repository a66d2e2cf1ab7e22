package get_berth_assignments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	"github.com/m04kA/SMC-BerthService/internal/service/assignments"
	"github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
)

const (
	msgInvalidBerthID    = "некорректный ID причала"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidFilter     = "некорректные параметры фильтрации"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/berths/{berthId}/assignments
//
// Query параметры:
//   - from, to — период в формате RFC 3339 (полуинтервал [from, to))
//   - status — фильтр по статусу назначения
//   - includeTerminal — включить завершённые и отменённые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	berthID, err := strconv.ParseInt(vars["berthId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /berths/{id}/assignments - Invalid berth ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBerthID)
		return
	}

	req := &models.ListAssignmentsRequest{BerthID: &berthID}

	query := r.URL.Query()
	if v := query.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.logger.Warn("GET /berths/{id}/assignments - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
			return
		}
		req.From = &from
	}
	if v := query.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.logger.Warn("GET /berths/{id}/assignments - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
			return
		}
		req.To = &to
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("includeTerminal"); v != "" {
		req.IncludeTerminal = v == "true" || v == "1"
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("GET /berths/{id}/assignments - Invalid filter: berth_id=%d, error=%v", berthID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /berths/{id}/assignments - Failed to list assignments: berth_id=%d, error=%v",
				berthID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /berths/{id}/assignments - Listed %d assignments: berth_id=%d",
		len(result.Assignments), berthID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
