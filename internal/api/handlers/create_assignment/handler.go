package create_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	createAssignment "github.com/m04kA/SMC-BerthService/internal/usecase/create_assignment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidTimeFormat     = "некорректный формат времени, ожидается RFC 3339"
	msgBerthNotFound         = "причал не найден"
	msgShipNotFound          = "судно не найдено"
	msgContainerNotFound     = "контейнер не найден"
	msgBerthUnderMaintenance = "причал закрыт на обслуживание"
	msgDimensionExceeded     = "габариты судна превышают лимиты причала"
	msgTimeConflict          = "временное окно пересекается с существующим назначением"
	msgCapacityExceeded      = "вместимость причала превышена"
)

type Handler struct {
	useCase CreateAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /assignments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAssignment.ErrValidation):
			h.logger.Warn("POST /assignments - Validation failed: berth_id=%d, error=%v", req.BerthID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAssignment.ErrBerthNotFound):
			h.logger.Warn("POST /assignments - Berth not found: berth_id=%d", req.BerthID)
			handlers.RespondNotFound(w, msgBerthNotFound)

		case errors.Is(err, createAssignment.ErrShipNotFound):
			h.logger.Warn("POST /assignments - Ship not found: ship_id=%v", req.ShipID)
			handlers.RespondNotFound(w, msgShipNotFound)

		case errors.Is(err, createAssignment.ErrContainerNotFound):
			h.logger.Warn("POST /assignments - Container not found: container_id=%v", req.ContainerID)
			handlers.RespondNotFound(w, msgContainerNotFound)

		case errors.Is(err, createAssignment.ErrBerthUnderMaintenance):
			h.logger.Warn("POST /assignments - Berth under maintenance: berth_id=%d", req.BerthID)
			handlers.RespondConflict(w, msgBerthUnderMaintenance)

		case errors.Is(err, createAssignment.ErrDimensionExceeded):
			h.logger.Warn("POST /assignments - Dimension exceeded: berth_id=%d, ship_id=%v", req.BerthID, req.ShipID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDimensionExceeded)

		case errors.Is(err, createAssignment.ErrTimeConflict):
			h.logger.Warn("POST /assignments - Time conflict: berth_id=%d", req.BerthID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createAssignment.ErrCapacityExceeded):
			h.logger.Warn("POST /assignments - Capacity exceeded: berth_id=%d, count=%d", req.BerthID, req.ContainerCount)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /assignments - Failed to create assignment: berth_id=%d, error=%v", req.BerthID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments - Assignment created successfully: assignment_id=%d, berth_id=%d",
		result.Assignment.ID, req.BerthID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
