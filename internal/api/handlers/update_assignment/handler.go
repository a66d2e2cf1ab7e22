package update_assignment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	updateAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/update_assignment"
)

const (
	msgInvalidAssignmentID   = "некорректный ID назначения"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidTimeFormat     = "некорректный формат времени, ожидается RFC 3339"
	msgPartialWindow         = "окно переносится только целиком: нужны оба времени"
	msgNotFound              = "назначение не найдено"
	msgBerthNotFound         = "причал не найден"
	msgShipNotFound          = "судно не найдено"
	msgNotUpdatable          = "назначение уже нельзя изменить"
	msgBerthUnderMaintenance = "причал закрыт на обслуживание"
	msgDimensionExceeded     = "габариты судна превышают лимиты причала"
	msgTimeConflict          = "временное окно пересекается с существующим назначением"
	msgCapacityExceeded      = "вместимость причала превышена"
)

var errPartialWindow = errors.New("partial window update")

type Handler struct {
	useCase UpdateAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assignmentID, err := strconv.ParseInt(vars["assignmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /assignments/{id} - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	var req UpdateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /assignments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(assignmentID)
	if err != nil {
		h.logger.Warn("PATCH /assignments/{id} - Failed to parse request: %v", err)
		if errors.Is(err, errPartialWindow) {
			handlers.RespondBadRequest(w, msgPartialWindow)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAssignment.ErrValidation):
			h.logger.Warn("PATCH /assignments/{id} - Validation failed: assignment_id=%d, error=%v", assignmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateAssignment.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /assignments/{id} - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAssignment.ErrBerthNotFound):
			h.logger.Warn("PATCH /assignments/{id} - Berth not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgBerthNotFound)

		case errors.Is(err, updateAssignment.ErrShipNotFound):
			h.logger.Warn("PATCH /assignments/{id} - Ship not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgShipNotFound)

		case errors.Is(err, updateAssignment.ErrNotUpdatable):
			h.logger.Warn("PATCH /assignments/{id} - Not updatable: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgNotUpdatable)

		case errors.Is(err, updateAssignment.ErrBerthUnderMaintenance):
			h.logger.Warn("PATCH /assignments/{id} - Berth under maintenance: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgBerthUnderMaintenance)

		case errors.Is(err, updateAssignment.ErrDimensionExceeded):
			h.logger.Warn("PATCH /assignments/{id} - Dimension exceeded: assignment_id=%d", assignmentID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDimensionExceeded)

		case errors.Is(err, updateAssignment.ErrTimeConflict):
			h.logger.Warn("PATCH /assignments/{id} - Time conflict: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, updateAssignment.ErrCapacityExceeded):
			h.logger.Warn("PATCH /assignments/{id} - Capacity exceeded: assignment_id=%d", assignmentID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("PATCH /assignments/{id} - Failed to update assignment: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /assignments/{id} - Assignment updated successfully: assignment_id=%d", assignmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
