package update_berth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	"github.com/m04kA/SMC-BerthService/internal/service/berths"
	"github.com/m04kA/SMC-BerthService/internal/service/berths/models"
)

const (
	msgInvalidBerthID    = "некорректный ID причала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound          = "причал не найден"
	msgCapacityBelowLoad = "вместимость нельзя уменьшить ниже текущей загрузки"
)

type Handler struct {
	service BerthService
	logger  Logger
}

func NewHandler(service BerthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/berths/{berthId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	berthID, err := strconv.ParseInt(vars["berthId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /berths/{id} - Invalid berth ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBerthID)
		return
	}

	var req models.UpdateBerthRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /berths/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	berth, err := h.service.Update(r.Context(), berthID, &req)
	if err != nil {
		switch {
		case errors.Is(err, berths.ErrInvalidInput):
			h.logger.Warn("PUT /berths/{id} - Validation failed: berth_id=%d, error=%v", berthID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, berths.ErrBerthNotFound):
			h.logger.Warn("PUT /berths/{id} - Berth not found: berth_id=%d", berthID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, berths.ErrCapacityBelowLoad):
			h.logger.Warn("PUT /berths/{id} - Capacity below load: berth_id=%d", berthID)
			handlers.RespondConflict(w, msgCapacityBelowLoad)

		default:
			h.logger.Error("PUT /berths/{id} - Failed to update berth: berth_id=%d, error=%v", berthID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /berths/{id} - Berth updated: berth_id=%d", berthID)
	handlers.RespondJSON(w, http.StatusOK, berth)
}
