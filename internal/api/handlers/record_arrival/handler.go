package record_arrival

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	recordArrival "github.com/m04kA/SMC-BerthService/internal/usecase/record_arrival"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTimeFormat   = "некорректный формат времени, ожидается RFC 3339"
	msgNotFound            = "назначение не найдено"
	msgAlreadyArrived      = "прибытие уже зафиксировано"
	msgTerminal            = "назначение уже завершено или отменено"
)

type Handler struct {
	useCase RecordArrivalUseCase
	logger  Logger
}

func NewHandler(useCase RecordArrivalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments/{assignmentId}/arrival
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assignmentID, err := strconv.ParseInt(vars["assignmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /assignments/{id}/arrival - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	// Тело опционально: без него прибытие фиксируется текущим временем
	var req RecordArrivalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /assignments/{id}/arrival - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(assignmentID)
	if err != nil {
		h.logger.Warn("POST /assignments/{id}/arrival - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, recordArrival.ErrValidation):
			h.logger.Warn("POST /assignments/{id}/arrival - Validation failed: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, recordArrival.ErrAssignmentNotFound):
			h.logger.Warn("POST /assignments/{id}/arrival - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, recordArrival.ErrAlreadyArrived):
			h.logger.Warn("POST /assignments/{id}/arrival - Already arrived: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgAlreadyArrived)

		case errors.Is(err, recordArrival.ErrAssignmentTerminal):
			h.logger.Warn("POST /assignments/{id}/arrival - Terminal status: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgTerminal)

		default:
			h.logger.Error("POST /assignments/{id}/arrival - Failed to record arrival: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments/{id}/arrival - Arrival recorded: assignment_id=%d", assignmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
