package update_charge_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BerthService/internal/api/handlers"
	"github.com/m04kA/SMC-BerthService/internal/service/assignments"
)

const (
	msgInvalidChargeID    = "некорректный ID начисления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "начисление не найдено"
	msgInvalidTransition  = "недопустимая смена статуса оплаты"
)

// UpdateChargeStatusRequest HTTP request model
type UpdateChargeStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

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

// Handle PATCH /api/v1/charges/{chargeId}/payment-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	chargeID, err := strconv.ParseInt(vars["chargeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /charges/{id}/payment-status - Invalid charge ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChargeID)
		return
	}

	var req UpdateChargeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /charges/{id}/payment-status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	charge, err := h.service.UpdateChargePaymentStatus(r.Context(), chargeID, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("PATCH /charges/{id}/payment-status - Invalid input: charge_id=%d, error=%v", chargeID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, assignments.ErrChargeNotFound):
			h.logger.Warn("PATCH /charges/{id}/payment-status - Charge not found: charge_id=%d", chargeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, assignments.ErrInvalidTransition):
			h.logger.Warn("PATCH /charges/{id}/payment-status - Invalid transition: charge_id=%d, status=%s",
				chargeID, req.PaymentStatus)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /charges/{id}/payment-status - Failed to update charge: charge_id=%d, error=%v",
				chargeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /charges/{id}/payment-status - Charge updated: charge_id=%d, status=%s",
		chargeID, req.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, charge)
}
