package get_assignment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	"github.com/m04kA/SMC-BerthService/internal/service/assignments"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgNotFound            = "назначение не найдено"
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

// Handle GET /api/v1/assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assignmentID, err := strconv.ParseInt(vars["assignmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /assignments/{id} - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	assignment, err := h.service.GetByID(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrAssignmentNotFound):
			h.logger.Warn("GET /assignments/{id} - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /assignments/{id} - Failed to get assignment: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, assignment)
}
