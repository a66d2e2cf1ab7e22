package get_berth_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	getBerthAvailability "github.com/m04kA/SMC-BerthService/internal/usecase/get_berth_availability"
)

const (
	msgInvalidBerthID    = "некорректный ID причала"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC 3339"
	msgMissingPeriod     = "обязательны query параметры from и to"
	msgNotFound          = "причал не найден"

	// Период по умолчанию, если указан только from
	defaultPeriod = 7 * 24 * time.Hour
)

type Handler struct {
	useCase GetBerthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetBerthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/berths/{berthId}/availability?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	berthID, err := strconv.ParseInt(vars["berthId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /berths/{id}/availability - Invalid berth ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBerthID)
		return
	}

	query := r.URL.Query()
	fromStr := query.Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /berths/{id}/availability - Missing from: berth_id=%d", berthID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		h.logger.Warn("GET /berths/{id}/availability - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	to := from.Add(defaultPeriod)
	if toStr := query.Get("to"); toStr != "" {
		to, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /berths/{id}/availability - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getBerthAvailability.Request{
		BerthID: berthID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBerthAvailability.ErrValidation):
			h.logger.Warn("GET /berths/{id}/availability - Validation failed: berth_id=%d, error=%v", berthID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getBerthAvailability.ErrBerthNotFound):
			h.logger.Warn("GET /berths/{id}/availability - Berth not found: berth_id=%d", berthID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /berths/{id}/availability - Failed to get availability: berth_id=%d, error=%v",
				berthID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
