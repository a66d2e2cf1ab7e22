package cancel_assignment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	serviceModels "github.com/m04kA/SMC-BerthService/internal/service/assignments/models"
	cancelAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/cancel_assignment"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgNotFound            = "назначение не найдено"
	msgAlreadyCompleted    = "назначение уже завершено"
	msgAlreadyCancelled    = "назначение уже отменено"
)

type Handler struct {
	useCase CancelAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/assignments/{assignmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assignmentID, err := strconv.ParseInt(vars["assignmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /assignments/{id}/cancel - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAssignment.Request{AssignmentID: assignmentID})
	if err != nil {
		switch {
		case errors.Is(err, cancelAssignment.ErrValidation):
			h.logger.Warn("PATCH /assignments/{id}/cancel - Validation failed: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, cancelAssignment.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /assignments/{id}/cancel - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelAssignment.ErrAlreadyCompleted):
			h.logger.Warn("PATCH /assignments/{id}/cancel - Already completed: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgAlreadyCompleted)

		case errors.Is(err, cancelAssignment.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /assignments/{id}/cancel - Already cancelled: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /assignments/{id}/cancel - Failed to cancel assignment: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /assignments/{id}/cancel - Assignment cancelled: assignment_id=%d", assignmentID)
	handlers.RespondJSON(w, http.StatusOK, serviceModels.FromDomainAssignment(result.Assignment))
}
