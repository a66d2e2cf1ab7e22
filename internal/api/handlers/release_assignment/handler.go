package release_assignment

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	releaseAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/release_assignment"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCharges      = "некорректный формат serviceCharges, ожидается десятичное число"
	msgNotFound            = "назначение не найдено"
	msgCancelled           = "назначение отменено, причал уже свободен"
	msgAlreadyCompleted    = "назначение уже завершено, начисление создано ранее"
)

type Handler struct {
	useCase ReleaseAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments/{assignmentId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assignmentID, err := strconv.ParseInt(vars["assignmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /assignments/{id}/release - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	// Тело опционально: без него используется надбавка по умолчанию
	var req ReleaseAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /assignments/{id}/release - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(assignmentID)
	if err != nil {
		h.logger.Warn("POST /assignments/{id}/release - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCharges)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, releaseAssignment.ErrValidation):
			h.logger.Warn("POST /assignments/{id}/release - Validation failed: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, releaseAssignment.ErrAssignmentNotFound):
			h.logger.Warn("POST /assignments/{id}/release - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, releaseAssignment.ErrAlreadyCancelled):
			h.logger.Warn("POST /assignments/{id}/release - Assignment cancelled: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgCancelled)

		case errors.Is(err, releaseAssignment.ErrAlreadyCompleted):
			h.logger.Warn("POST /assignments/{id}/release - Already completed: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgAlreadyCompleted)

		default:
			h.logger.Error("POST /assignments/{id}/release - Failed to release assignment: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments/{id}/release - Assignment released: assignment_id=%d, total=%s",
		assignmentID, result.Charge.TotalCharges.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
