package get_usage_charge

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
	msgAssignmentNotFound  = "назначение не найдено"
	msgChargeNotFound      = "начисление не найдено, назначение ещё не завершено"
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

// Handle GET /api/v1/assignments/{assignmentId}/charge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assignmentID, err := strconv.ParseInt(vars["assignmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /assignments/{id}/charge - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	charge, err := h.service.GetCharge(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrAssignmentNotFound):
			h.logger.Warn("GET /assignments/{id}/charge - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgAssignmentNotFound)

		case errors.Is(err, assignments.ErrChargeNotFound):
			h.logger.Warn("GET /assignments/{id}/charge - Charge not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgChargeNotFound)

		default:
			h.logger.Error("GET /assignments/{id}/charge - Failed to get charge: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, charge)
}
