package create_berth

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	"github.com/m04kA/SMC-BerthService/internal/service/berths"
	"github.com/m04kA/SMC-BerthService/internal/service/berths/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/berths
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBerthRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /berths - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	berth, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, berths.ErrInvalidInput):
			h.logger.Warn("POST /berths - Validation failed: error=%v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /berths - Failed to create berth: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /berths - Berth created: berth_id=%d", berth.ID)
	handlers.RespondJSON(w, http.StatusCreated, berth)
}
