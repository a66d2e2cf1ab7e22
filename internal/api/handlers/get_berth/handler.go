package get_berth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	"github.com/m04kA/SMC-BerthService/internal/service/berths"
)

const (
	msgInvalidBerthID = "некорректный ID причала"
	msgNotFound       = "причал не найден"
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

// Handle GET /api/v1/berths/{berthId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	berthID, err := strconv.ParseInt(vars["berthId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /berths/{id} - Invalid berth ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBerthID)
		return
	}

	berth, err := h.service.GetByID(r.Context(), berthID)
	if err != nil {
		switch {
		case errors.Is(err, berths.ErrBerthNotFound):
			h.logger.Warn("GET /berths/{id} - Berth not found: berth_id=%d", berthID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /berths/{id} - Failed to get berth: berth_id=%d, error=%v", berthID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, berth)
}
